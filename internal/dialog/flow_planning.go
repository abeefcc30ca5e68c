package dialog

import (
	"fmt"

	"skladbot/internal/i18n"
)

const (
	boardOutbound  = "outbound"
	boardWarehouse = "warehouse"
)

func (e *Engine) planningBoard(c *call) (Reply, error) {
	switch c.text {
	case i18n.T(c.lang, "btn_planning_outbound"):
		c.sess.Planning.Board = boardOutbound
	case i18n.T(c.lang, "btn_planning_warehouse"):
		c.sess.Planning.Board = boardWarehouse
	default:
		return withMenu(text(c.lang, "planning_type_prompt"), planningMenu(c.lang)), nil
	}
	return e.advance(c, StepPeriod,
		withMenu(text(c.lang, "planning_period_prompt"), periodMenu(c.lang)))
}

func (e *Engine) planningPeriod(c *call) (Reply, error) {
	period, ok := periodFromLabel(c.lang, c.text)
	if !ok {
		return withMenu(text(c.lang, "planning_period_prompt"), periodMenu(c.lang)), nil
	}
	if period == periodDate {
		return e.advance(c, StepDate, text(c.lang, "planning_date_prompt"))
	}
	start, end, _ := resolvePeriod(period, e.now())
	return e.renderPlans(c, start, end)
}

func (e *Engine) planningDate(c *call) (Reply, error) {
	iso, ok := parseDate(c.text)
	if !ok {
		return text(c.lang, "planning_date_prompt"), nil
	}
	return e.renderPlans(c, iso, iso)
}

func (e *Engine) renderPlans(c *call, start, end string) (Reply, error) {
	var body string
	switch c.sess.Planning.Board {
	case boardWarehouse:
		plans, err := e.store.ListWarehousePlans(c.ctx, start, end)
		if err != nil {
			return Reply{}, fmt.Errorf("dialog: list warehouse plans: %w", err)
		}
		body = formatWarehousePlans(plans)
	default:
		plans, err := e.store.ListOutboundPlans(c.ctx, start, end)
		if err != nil {
			return Reply{}, fmt.Errorf("dialog: list outbound plans: %w", err)
		}
		body = formatOutboundPlans(plans)
	}
	if body == "" {
		return e.finish(c, text(c.lang, "planning_empty"))
	}
	return e.finish(c, Reply{Text: body})
}
