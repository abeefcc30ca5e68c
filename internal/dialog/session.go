package dialog

import "sync"

// Flow identifies a multi-step conversation.
type Flow string

const (
	FlowNone       Flow = ""
	FlowOnboarding Flow = "onboarding"
	FlowLanguage   Flow = "language"
	FlowClientAdd  Flow = "client_add"
	FlowClientFind Flow = "client_find"
	FlowReadyLier  Flow = "ready_lier"
	FlowProcessed  Flow = "processed"
	FlowPickup     Flow = "pickup"
	FlowPlanning   Flow = "planning"
	FlowHours      Flow = "hours"
	FlowAdminRole  Flow = "admin_role"
	FlowAdminPerf  Flow = "admin_perf"
	FlowProducts   Flow = "products"
	FlowStands     Flow = "stands"
)

// Step identifies the position inside a flow. Step names are only
// meaningful together with their flow.
type Step string

const (
	StepName            Step = "name"
	StepCity            Step = "city"
	StepProduct         Step = "product"
	StepRemainderChoice Step = "remainder_choice"
	StepRemainderText   Step = "remainder_text"
	StepDate            Step = "date"
	StepTime            Step = "time"
	StepConfirm         Step = "confirm"
	StepQuery           Step = "query"
	StepPickID          Step = "pick_id"
	StepAction          Step = "action"
	StepBoard           Step = "board"
	StepPeriod          Step = "period"
	StepStart           Step = "start"
	StepEnd             Step = "end"
	StepBreak           Step = "break"
	StepTargetUser      Step = "target_user"
	StepRole            Step = "role"
	StepChoose          Step = "choose"
)

// clientAddData accumulates the add-client record before the single
// insert at confirm time.
type clientAddData struct {
	Name      string
	City      string
	Product   string
	Remainder string
	Date      string
}

// statusData serves the ready-lier and processed flows.
type statusData struct {
	ClientID int64
	Date     string
}

type pickupData struct {
	ClientID  int64
	Action    string
	Remainder string
}

type planningData struct {
	Board string
}

type hoursData struct {
	Date  string
	Start string
	End   string
}

type adminRoleData struct {
	TargetID int64
}

type adminPerfData struct {
	Name string
}

// session is one user's conversation position. Exactly one of the
// data pointers is set while a flow is active.
type session struct {
	Flow Flow
	Step Step

	ClientAdd *clientAddData
	Status    *statusData
	Pickup    *pickupData
	Planning  *planningData
	Hours     *hoursData
	AdminRole *adminRoleData
	AdminPerf *adminPerfData
}

func (s *session) idle() bool {
	return s == nil || s.Flow == FlowNone
}

// Sessions keeps one in-memory entry per user id. State does not
// survive a restart.
type Sessions struct {
	mu sync.RWMutex
	m  map[int64]*session
}

func NewSessions() *Sessions {
	return &Sessions{m: make(map[int64]*session)}
}

func (s *Sessions) get(userID int64) *session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m[userID]
}

func (s *Sessions) put(userID int64, sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[userID] = sess
}

func (s *Sessions) clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, userID)
}
