package dialog

import (
	"fmt"
	"strconv"

	"github.com/aarondl/null/v8"

	"skladbot/internal/domain"
	"skladbot/internal/i18n"
)

// Add client: name, city, product, optional remainder, date, confirm.
// Nothing is written until the operator confirms.

func (e *Engine) clientAddName(c *call) (Reply, error) {
	c.sess.ClientAdd.Name = c.text
	return e.advance(c, StepCity, text(c.lang, "clients_enter_city"))
}

func (e *Engine) clientAddCity(c *call) (Reply, error) {
	c.sess.ClientAdd.City = c.text
	return e.advance(c, StepProduct, text(c.lang, "clients_enter_product"))
}

func (e *Engine) clientAddProduct(c *call) (Reply, error) {
	c.sess.ClientAdd.Product = c.text
	return e.advance(c, StepRemainderChoice,
		withMenu(text(c.lang, "clients_remainder"), remainderChoiceMenu(c.lang)))
}

func (e *Engine) clientAddRemainderChoice(c *call) (Reply, error) {
	switch c.text {
	case i18n.T(c.lang, "btn_remainder_none"):
		c.sess.ClientAdd.Remainder = ""
		return e.advance(c, StepDate, text(c.lang, "clients_enter_date"))
	case i18n.T(c.lang, "btn_remainder_enter"):
		return e.advance(c, StepRemainderText, text(c.lang, "clients_enter_remainder"))
	}
	return withMenu(text(c.lang, "clients_remainder"), remainderChoiceMenu(c.lang)), nil
}

func (e *Engine) clientAddRemainderText(c *call) (Reply, error) {
	c.sess.ClientAdd.Remainder = c.text
	return e.advance(c, StepDate, text(c.lang, "clients_enter_date"))
}

func (e *Engine) clientAddDate(c *call) (Reply, error) {
	iso, ok := parseDate(c.text)
	if !ok {
		return text(c.lang, "clients_enter_date"), nil
	}
	d := c.sess.ClientAdd
	d.Date = iso
	remainder := d.Remainder
	if remainder == "" {
		remainder = "-"
	}
	summary := joinLines(
		fmt.Sprintf("%s %s", i18n.T(c.lang, "clients_enter_name"), d.Name),
		fmt.Sprintf("%s %s", i18n.T(c.lang, "clients_enter_city"), d.City),
		fmt.Sprintf("%s %s", i18n.T(c.lang, "clients_enter_product"), d.Product),
		fmt.Sprintf("%s %s", i18n.T(c.lang, "clients_remainder"), remainder),
		fmt.Sprintf("%s %s", i18n.T(c.lang, "clients_enter_date"), c.text),
	)
	return e.advance(c, StepConfirm,
		withMenu(textf(c.lang, "clients_confirm", summary), confirmMenu(c.lang)))
}

func (e *Engine) clientAddConfirm(c *call) (Reply, error) {
	d := c.sess.ClientAdd
	switch c.text {
	case i18n.T(c.lang, "btn_confirm_save"):
		client := domain.Client{
			Name:           d.Name,
			City:           d.City,
			MissingProduct: d.Product,
			Remainder:      null.StringFrom(d.Remainder),
			Date:           d.Date,
			Responsible:    c.user.Name,
		}
		if _, err := e.store.CreateClient(c.ctx, client); err != nil {
			return Reply{}, fmt.Errorf("dialog: create client: %w", err)
		}
		return e.finish(c, withMenu(text(c.lang, "saved"), clientsMenu(c.user.Role, c.lang)))
	case i18n.T(c.lang, "btn_confirm_edit"):
		c.sess.ClientAdd = &clientAddData{}
		return e.advance(c, StepName, text(c.lang, "clients_enter_name"))
	case i18n.T(c.lang, "btn_confirm_cancel"):
		return e.abort(c, withMenu(text(c.lang, "cancelled"), clientsMenu(c.user.Role, c.lang)))
	}
	return withMenu(text(c.lang, "clients_confirm"), confirmMenu(c.lang)), nil
}

// Search is a single-step flow; zero matches end it.
func (e *Engine) clientFindQuery(c *call) (Reply, error) {
	clients, err := e.store.SearchClients(c.ctx, c.text)
	if err != nil {
		return Reply{}, fmt.Errorf("dialog: search clients: %w", err)
	}
	if len(clients) == 0 {
		return e.finish(c, text(c.lang, "clients_search_none"))
	}
	return e.finish(c, Reply{Text: formatClients(clients)})
}

// searchThenPickID is the shared first step of the status and pickup
// flows: search, show candidates, move on to the id prompt.
func (e *Engine) searchThenPickID(c *call) (Reply, error) {
	clients, err := e.store.SearchClients(c.ctx, c.text)
	if err != nil {
		return Reply{}, fmt.Errorf("dialog: search clients: %w", err)
	}
	if len(clients) == 0 {
		return e.abort(c, text(c.lang, "clients_search_none"))
	}
	return e.advance(c, StepPickID,
		textf(c.lang, "clients_search_results", formatClients(clients)))
}

// pickClientID parses the typed id. Any integer is accepted even if it
// was not among the candidates; status updates on a missing id change
// zero rows.
func pickClientID(text string) (int64, bool) {
	id, err := strconv.ParseInt(text, 10, 64)
	return id, err == nil
}

func (e *Engine) readyLierQuery(c *call) (Reply, error) {
	return e.searchThenPickID(c)
}

func (e *Engine) readyLierPickID(c *call) (Reply, error) {
	id, ok := pickClientID(c.text)
	if !ok {
		return textf(c.lang, "clients_search_results", ""), nil
	}
	c.sess.Status.ClientID = id
	return e.advance(c, StepDate, text(c.lang, "clients_ready_date"))
}

func (e *Engine) readyLierDate(c *call) (Reply, error) {
	iso, ok := parseDate(c.text)
	if !ok {
		return text(c.lang, "clients_ready_date"), nil
	}
	if err := e.store.UpdateClientReadyLier(c.ctx, c.sess.Status.ClientID, iso, c.user.Name); err != nil {
		return Reply{}, fmt.Errorf("dialog: update ready lier: %w", err)
	}
	return e.finish(c, withMenu(text(c.lang, "saved"), clientsMenu(c.user.Role, c.lang)))
}

func (e *Engine) processedQuery(c *call) (Reply, error) {
	return e.searchThenPickID(c)
}

func (e *Engine) processedPickID(c *call) (Reply, error) {
	id, ok := pickClientID(c.text)
	if !ok {
		return textf(c.lang, "clients_search_results", ""), nil
	}
	c.sess.Status.ClientID = id
	return e.advance(c, StepDate, text(c.lang, "clients_processed_date"))
}

func (e *Engine) processedDate(c *call) (Reply, error) {
	iso, ok := parseDate(c.text)
	if !ok {
		return text(c.lang, "clients_processed_date"), nil
	}
	c.sess.Status.Date = iso
	return e.advance(c, StepTime, text(c.lang, "clients_processed_time"))
}

func (e *Engine) processedTime(c *call) (Reply, error) {
	hm, ok := parseTime(c.text)
	if !ok {
		return text(c.lang, "clients_processed_time"), nil
	}
	dt := c.sess.Status.Date + " " + hm
	if err := e.store.UpdateClientProcessed(c.ctx, c.sess.Status.ClientID, dt, c.user.Name); err != nil {
		return Reply{}, fmt.Errorf("dialog: update processed: %w", err)
	}
	return e.finish(c, withMenu(text(c.lang, "saved"), clientsMenu(c.user.Role, c.lang)))
}

// pickupList is a read-only listing outside of any flow.
func (e *Engine) pickupList(c *call) (Reply, error) {
	clients, err := e.store.ListPickupClients(c.ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("dialog: list pickup clients: %w", err)
	}
	if len(clients) == 0 {
		return text(c.lang, "pickup_list_empty"), nil
	}
	return Reply{Text: formatClients(clients)}, nil
}
