package dialog

import (
	"fmt"
	"strconv"

	"skladbot/internal/domain"
)

func (e *Engine) adminRoleUser(c *call) (Reply, error) {
	id, err := strconv.ParseInt(c.text, 10, 64)
	if err != nil {
		return text(c.lang, "admin_role_user"), nil
	}
	c.sess.AdminRole.TargetID = id
	return e.advance(c, StepRole, text(c.lang, "admin_role_set"))
}

func (e *Engine) adminRoleSet(c *call) (Reply, error) {
	role, ok := domain.ParseRole(c.text)
	if !ok {
		return text(c.lang, "admin_role_set"), nil
	}
	if err := e.store.UpdateUserRole(c.ctx, c.sess.AdminRole.TargetID, role); err != nil {
		return Reply{}, fmt.Errorf("dialog: set role: %w", err)
	}
	return e.finish(c, withMenu(text(c.lang, "admin_role_done"), adminMenu(c.lang)))
}

func (e *Engine) adminPerfUser(c *call) (Reply, error) {
	c.sess.AdminPerf.Name = c.text
	return e.advance(c, StepPeriod,
		withMenu(text(c.lang, "admin_performance_period"), periodMenu(c.lang)))
}

func (e *Engine) adminPerfPeriod(c *call) (Reply, error) {
	period, ok := periodFromLabel(c.lang, c.text)
	if !ok {
		return withMenu(text(c.lang, "admin_performance_period"), periodMenu(c.lang)), nil
	}
	if period == periodDate {
		return e.advance(c, StepDate, text(c.lang, "admin_performance_date"))
	}
	start, end, _ := resolvePeriod(period, e.now())
	return e.renderPerformance(c, start, end)
}

func (e *Engine) adminPerfDate(c *call) (Reply, error) {
	iso, ok := parseDate(c.text)
	if !ok {
		return text(c.lang, "admin_performance_date"), nil
	}
	return e.renderPerformance(c, iso, iso)
}

func (e *Engine) renderPerformance(c *call, start, end string) (Reply, error) {
	total, err := e.store.SumHoursByName(c.ctx, c.sess.AdminPerf.Name, start, end)
	if err != nil {
		return Reply{}, fmt.Errorf("dialog: sum hours: %w", err)
	}
	return e.finish(c, withMenu(
		textf(c.lang, "admin_performance_result", total),
		adminMenu(c.lang)))
}
