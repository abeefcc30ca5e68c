// Package dialog drives the per-user conversation state machine. The
// engine is transport-agnostic: it consumes plain text inputs and
// returns replies with optional keyboard grids, so it is exercised the
// same way by the Telegram adapter and by tests.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"skladbot/core/logger"
	"skladbot/internal/domain"
	"skladbot/internal/i18n"
	"skladbot/internal/roles"
	"skladbot/internal/storage"
)

// Storage is the subset of the persistence layer the engine calls.
type Storage interface {
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	UpsertUser(ctx context.Context, u domain.User) error
	UpdateUserRole(ctx context.Context, userID int64, role domain.Role) error
	UpdateUserLang(ctx context.Context, userID int64, lang string) error

	CreateClient(ctx context.Context, c domain.Client) (int64, error)
	SearchClients(ctx context.Context, search string) ([]domain.Client, error)
	UpdateClientReadyLier(ctx context.Context, id int64, date, responsible string) error
	UpdateClientProcessed(ctx context.Context, id int64, datetime, responsible string) error
	UpdateClientRemainder(ctx context.Context, id int64, remainder string) error
	ListPickupClients(ctx context.Context) ([]domain.Client, error)
	AddPickupLog(ctx context.Context, l domain.PickupLog) error

	SearchProducts(ctx context.Context, search string) ([]domain.Product, error)
	SearchStands(ctx context.Context, search string) ([]domain.Stand, error)

	ListOutboundPlans(ctx context.Context, start, end string) ([]domain.OutboundPlan, error)
	ListWarehousePlans(ctx context.Context, start, end string) ([]domain.WarehousePlan, error)

	AddHours(ctx context.Context, h domain.HoursEntry) error
	SumHoursByName(ctx context.Context, name, start, end string) (float64, error)
}

// Input is one incoming text message.
type Input struct {
	UserID int64
	// Name is the sender's Telegram display name, used only for the
	// owner bootstrap.
	Name string
	Text string
}

// Engine dispatches inputs against sessions, the role policy and the
// store.
type Engine struct {
	store    Storage
	sessions *Sessions
	ownerID  int64
	now      func() time.Time
	steps    map[Flow]map[Step]stepFunc
}

type call struct {
	ctx  context.Context
	in   Input
	user *domain.User
	lang string
	text string
	sess *session
}

type stepFunc func(*call) (Reply, error)

// flowGate maps each role-gated flow to its policy entry. The gate is
// re-checked on every message, not only at flow start.
var flowGate = map[Flow]roles.Entry{
	FlowClientAdd:  roles.ClientsAdd,
	FlowClientFind: roles.ClientsSearch,
	FlowReadyLier:  roles.ClientsReadyLier,
	FlowProcessed:  roles.ClientsProcessed,
	FlowPickup:     roles.MenuPickup,
	FlowPlanning:   roles.MenuPlanning,
	FlowHours:      roles.MenuHours,
	FlowAdminRole:  roles.AdminRoles,
	FlowAdminPerf:  roles.AdminPerformance,
	FlowProducts:   roles.MenuProducts,
	FlowStands:     roles.MenuStands,
}

func New(store Storage, ownerID int64) *Engine {
	e := &Engine{
		store:    store,
		sessions: NewSessions(),
		ownerID:  ownerID,
		now:      time.Now,
	}
	e.steps = map[Flow]map[Step]stepFunc{
		FlowOnboarding: {StepName: e.onboardName},
		FlowLanguage:   {StepChoose: e.languageChoose},
		FlowClientAdd: {
			StepName:            e.clientAddName,
			StepCity:            e.clientAddCity,
			StepProduct:         e.clientAddProduct,
			StepRemainderChoice: e.clientAddRemainderChoice,
			StepRemainderText:   e.clientAddRemainderText,
			StepDate:            e.clientAddDate,
			StepConfirm:         e.clientAddConfirm,
		},
		FlowClientFind: {StepQuery: e.clientFindQuery},
		FlowReadyLier: {
			StepQuery:  e.readyLierQuery,
			StepPickID: e.readyLierPickID,
			StepDate:   e.readyLierDate,
		},
		FlowProcessed: {
			StepQuery:  e.processedQuery,
			StepPickID: e.processedPickID,
			StepDate:   e.processedDate,
			StepTime:   e.processedTime,
		},
		FlowPickup: {
			StepQuery:         e.pickupQuery,
			StepPickID:        e.pickupPickID,
			StepAction:        e.pickupAction,
			StepRemainderText: e.pickupRemainder,
			StepDate:          e.pickupDate,
		},
		FlowPlanning: {
			StepBoard:  e.planningBoard,
			StepPeriod: e.planningPeriod,
			StepDate:   e.planningDate,
		},
		FlowHours: {
			StepDate:  e.hoursDate,
			StepStart: e.hoursStart,
			StepEnd:   e.hoursEnd,
			StepBreak: e.hoursBreak,
		},
		FlowAdminRole: {
			StepTargetUser: e.adminRoleUser,
			StepRole:       e.adminRoleSet,
		},
		FlowAdminPerf: {
			StepTargetUser: e.adminPerfUser,
			StepPeriod:     e.adminPerfPeriod,
			StepDate:       e.adminPerfDate,
		},
		FlowProducts: {StepQuery: e.productsQuery},
		FlowStands:   {StepQuery: e.standsQuery},
	}
	return e
}

// HandleStart serves /start: greeting plus either the onboarding
// prompt or the main menu.
func (e *Engine) HandleStart(ctx context.Context, in Input) (Reply, error) {
	user, err := e.loadUser(ctx, in)
	if err != nil {
		return Reply{}, err
	}
	lang := userLang(user)
	header := joinLines(
		i18n.T(lang, "greeting"),
		fmt.Sprintf(i18n.T(lang, "welcome_id"), in.UserID),
	)
	if user == nil {
		e.sessions.put(in.UserID, &session{Flow: FlowOnboarding, Step: StepName})
		return Reply{Text: joinLines(header, i18n.T(lang, "ask_name"))}, nil
	}
	e.sessions.clear(in.UserID)
	return Reply{
		Text: joinLines(header, fmt.Sprintf(i18n.T(lang, "name_saved"), user.Name)),
		Menu: mainMenu(user.Role, lang),
	}, nil
}

// Handle serves every non-command text message.
func (e *Engine) Handle(ctx context.Context, in Input) (Reply, error) {
	in.Text = strings.TrimSpace(in.Text)
	user, err := e.loadUser(ctx, in)
	if err != nil {
		return Reply{}, err
	}
	lang := userLang(user)

	if user != nil && user.ID == e.ownerID && strings.EqualFold(in.Text, "debug") {
		return Reply{Text: fmt.Sprintf("user_id=%d, role=%s", user.ID, user.Role)}, nil
	}

	c := &call{ctx: ctx, in: in, user: user, lang: lang, text: in.Text, sess: e.sessions.get(in.UserID)}

	if in.Text == i18n.T(lang, "btn_back") {
		e.sessions.clear(in.UserID)
		if user == nil {
			return Reply{}, nil
		}
		return withMenu(text(lang, "main_menu"), mainMenu(user.Role, lang)), nil
	}

	if !c.sess.idle() {
		if entry, gated := flowGate[c.sess.Flow]; gated {
			if user == nil || !roles.Allowed(user.Role, entry) {
				e.sessions.clear(in.UserID)
				logger.Warn(ctx, "dialog", "flow.denied",
					slog.String("flow", string(c.sess.Flow)))
				return text(lang, "unknown"), nil
			}
		}
		fn := e.steps[c.sess.Flow][c.sess.Step]
		if fn == nil {
			e.sessions.clear(in.UserID)
			return text(lang, "unknown"), nil
		}
		return fn(c)
	}

	if user == nil {
		e.sessions.put(in.UserID, &session{Flow: FlowOnboarding, Step: StepName})
		return text(lang, "ask_name"), nil
	}

	return e.dispatchMenu(c)
}

// loadUser fetches the user and applies the owner bootstrap: the
// configured owner id is created or promoted to Admin on any contact.
func (e *Engine) loadUser(ctx context.Context, in Input) (*domain.User, error) {
	user, err := e.store.GetUser(ctx, in.UserID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("dialog: load user: %w", err)
	}
	if e.ownerID == 0 || in.UserID != e.ownerID {
		return user, nil
	}
	switch {
	case user == nil:
		name := in.Name
		if name == "" {
			name = "Owner"
		}
		user = &domain.User{ID: in.UserID, Name: name, Role: domain.RoleAdmin, Lang: i18n.DefaultLang}
		if err := e.store.UpsertUser(ctx, *user); err != nil {
			return nil, fmt.Errorf("dialog: bootstrap owner: %w", err)
		}
		logger.Info(ctx, "dialog", "owner.bootstrap", slog.Int64("user_id", in.UserID))
	case user.Role != domain.RoleAdmin:
		if err := e.store.UpdateUserRole(ctx, in.UserID, domain.RoleAdmin); err != nil {
			return nil, fmt.Errorf("dialog: promote owner: %w", err)
		}
		user.Role = domain.RoleAdmin
		logger.Info(ctx, "dialog", "owner.promote", slog.Int64("user_id", in.UserID))
	}
	return user, nil
}

func userLang(user *domain.User) string {
	if user != nil && i18n.Known(user.Lang) {
		return user.Lang
	}
	return i18n.DefaultLang
}

// dispatchMenu matches idle input against the localized menu labels.
// Every label is policy-gated; a label the role may not use falls
// through to the unknown reply, indistinguishable from free text.
func (e *Engine) dispatchMenu(c *call) (Reply, error) {
	l := func(key string) string { return i18n.T(c.lang, key) }
	allowed := func(entry roles.Entry) bool { return roles.Allowed(c.user.Role, entry) }

	switch {
	case c.text == l("btn_language"):
		return e.startFlow(c, &session{Flow: FlowLanguage, Step: StepChoose},
			withMenu(text(c.lang, "lang_prompt"), langMenu()))

	case c.text == l("btn_clients") && allowed(roles.MenuClients):
		return withMenu(text(c.lang, "btn_clients"), clientsMenu(c.user.Role, c.lang)), nil

	case c.text == l("btn_clients_add") && allowed(roles.ClientsAdd):
		return e.startFlow(c, &session{Flow: FlowClientAdd, Step: StepName, ClientAdd: &clientAddData{}},
			text(c.lang, "clients_enter_name"))

	case c.text == l("btn_clients_search") && allowed(roles.ClientsSearch):
		return e.startFlow(c, &session{Flow: FlowClientFind, Step: StepQuery},
			text(c.lang, "clients_search_prompt"))

	case c.text == l("btn_clients_ready_lier") && allowed(roles.ClientsReadyLier):
		return e.startFlow(c, &session{Flow: FlowReadyLier, Step: StepQuery, Status: &statusData{}},
			text(c.lang, "clients_search_prompt"))

	case c.text == l("btn_clients_processed") && allowed(roles.ClientsProcessed):
		return e.startFlow(c, &session{Flow: FlowProcessed, Step: StepQuery, Status: &statusData{}},
			text(c.lang, "clients_search_prompt"))

	case c.text == l("btn_clients_pickup_list") && allowed(roles.ClientsPickupList):
		return e.pickupList(c)

	case c.text == l("btn_pickup") && allowed(roles.MenuPickup):
		return e.startFlow(c, &session{Flow: FlowPickup, Step: StepQuery, Pickup: &pickupData{}},
			text(c.lang, "pickup_query"))

	case c.text == l("btn_planning") && allowed(roles.MenuPlanning):
		return e.startFlow(c, &session{Flow: FlowPlanning, Step: StepBoard, Planning: &planningData{}},
			withMenu(text(c.lang, "planning_type_prompt"), planningMenu(c.lang)))

	case c.text == l("btn_hours") && allowed(roles.MenuHours):
		return e.startFlow(c, &session{Flow: FlowHours, Step: StepDate, Hours: &hoursData{}},
			text(c.lang, "hours_date"))

	case c.text == l("btn_admin") && allowed(roles.MenuAdmin):
		return withMenu(text(c.lang, "btn_admin"), adminMenu(c.lang)), nil

	case c.text == l("btn_admin_roles") && allowed(roles.AdminRoles):
		return e.startFlow(c, &session{Flow: FlowAdminRole, Step: StepTargetUser, AdminRole: &adminRoleData{}},
			text(c.lang, "admin_role_user"))

	case c.text == l("btn_admin_performance") && allowed(roles.AdminPerformance):
		return e.startFlow(c, &session{Flow: FlowAdminPerf, Step: StepTargetUser, AdminPerf: &adminPerfData{}},
			text(c.lang, "admin_performance_user"))

	case c.text == l("btn_products") && allowed(roles.MenuProducts):
		return e.startFlow(c, &session{Flow: FlowProducts, Step: StepQuery},
			text(c.lang, "products_search"))

	case c.text == l("btn_stands") && allowed(roles.MenuStands):
		return e.startFlow(c, &session{Flow: FlowStands, Step: StepQuery},
			text(c.lang, "stands_search"))
	}

	return text(c.lang, "unknown"), nil
}

func (e *Engine) startFlow(c *call, sess *session, reply Reply) (Reply, error) {
	e.sessions.put(c.in.UserID, sess)
	c.sess = sess
	logger.Debug(c.ctx, "dialog", "flow.start", slog.String("flow", string(sess.Flow)))
	return reply, nil
}

// finish clears the session before the final reply; persistence has
// already happened by the time it is called.
func (e *Engine) finish(c *call, reply Reply) (Reply, error) {
	logger.Info(c.ctx, "dialog", "flow.complete", slog.String("flow", string(c.sess.Flow)))
	e.sessions.clear(c.in.UserID)
	return reply, nil
}

func (e *Engine) abort(c *call, reply Reply) (Reply, error) {
	logger.Debug(c.ctx, "dialog", "flow.abort", slog.String("flow", string(c.sess.Flow)))
	e.sessions.clear(c.in.UserID)
	return reply, nil
}

func (e *Engine) advance(c *call, step Step, reply Reply) (Reply, error) {
	c.sess.Step = step
	e.sessions.put(c.in.UserID, c.sess)
	return reply, nil
}

// onboardName stores the first message of an unknown user as their
// name with the Guest role.
func (e *Engine) onboardName(c *call) (Reply, error) {
	u := domain.User{ID: c.in.UserID, Name: c.text, Role: domain.RoleGuest, Lang: i18n.DefaultLang}
	if err := e.store.UpsertUser(c.ctx, u); err != nil {
		return Reply{}, fmt.Errorf("dialog: onboard user: %w", err)
	}
	return e.finish(c, withMenu(
		textf(i18n.DefaultLang, "name_saved", c.text),
		mainMenu(domain.RoleGuest, i18n.DefaultLang)))
}

func (e *Engine) languageChoose(c *call) (Reply, error) {
	choice := strings.ToLower(c.text)
	if !i18n.Known(choice) {
		return withMenu(text(c.lang, "lang_prompt"), langMenu()), nil
	}
	if err := e.store.UpdateUserLang(c.ctx, c.in.UserID, choice); err != nil {
		return Reply{}, fmt.Errorf("dialog: update lang: %w", err)
	}
	role := domain.RoleGuest
	if c.user != nil {
		role = c.user.Role
	}
	return e.finish(c, withMenu(text(choice, "lang_saved"), mainMenu(role, choice)))
}
