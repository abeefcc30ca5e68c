package dialog

import (
	"fmt"

	"github.com/aarondl/null/v8"

	"skladbot/internal/domain"
	"skladbot/internal/i18n"
)

// Pickup: find the client, record whether everything was taken, then
// overwrite the client remainder and append one log row. The two
// writes are individually atomic with no surrounding transaction.

func (e *Engine) pickupQuery(c *call) (Reply, error) {
	return e.searchThenPickID(c)
}

func (e *Engine) pickupPickID(c *call) (Reply, error) {
	id, ok := pickClientID(c.text)
	if !ok {
		return withMenu(text(c.lang, "pickup_choose"), pickupActionMenu(c.lang)), nil
	}
	c.sess.Pickup.ClientID = id
	return e.advance(c, StepAction,
		withMenu(text(c.lang, "pickup_choose"), pickupActionMenu(c.lang)))
}

func (e *Engine) pickupAction(c *call) (Reply, error) {
	switch c.text {
	case i18n.T(c.lang, "btn_pickup_all"):
		c.sess.Pickup.Action = domain.PickupAll
		c.sess.Pickup.Remainder = ""
		return e.advance(c, StepDate, text(c.lang, "pickup_date"))
	case i18n.T(c.lang, "btn_pickup_left"):
		c.sess.Pickup.Action = domain.PickupLeft
		return e.advance(c, StepRemainderText, text(c.lang, "pickup_left_prompt"))
	}
	return withMenu(text(c.lang, "pickup_choose"), pickupActionMenu(c.lang)), nil
}

func (e *Engine) pickupRemainder(c *call) (Reply, error) {
	c.sess.Pickup.Remainder = c.text
	return e.advance(c, StepDate, text(c.lang, "pickup_date"))
}

func (e *Engine) pickupDate(c *call) (Reply, error) {
	iso, ok := parseDate(c.text)
	if !ok {
		return text(c.lang, "pickup_date"), nil
	}
	d := c.sess.Pickup
	if err := e.store.UpdateClientRemainder(c.ctx, d.ClientID, d.Remainder); err != nil {
		return Reply{}, fmt.Errorf("dialog: update remainder: %w", err)
	}
	log := domain.PickupLog{
		ClientID:    d.ClientID,
		Date:        iso,
		Action:      d.Action,
		Remainder:   null.StringFrom(d.Remainder),
		Responsible: c.user.Name,
	}
	if err := e.store.AddPickupLog(c.ctx, log); err != nil {
		return Reply{}, fmt.Errorf("dialog: add pickup log: %w", err)
	}
	return e.finish(c, withMenu(text(c.lang, "saved"), mainMenu(c.user.Role, c.lang)))
}
