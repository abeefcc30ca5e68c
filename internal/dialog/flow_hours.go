package dialog

import (
	"fmt"

	"skladbot/internal/domain"
	"skladbot/internal/i18n"
)

func (e *Engine) hoursDate(c *call) (Reply, error) {
	iso, ok := parseDate(c.text)
	if !ok {
		return text(c.lang, "hours_date"), nil
	}
	c.sess.Hours.Date = iso
	return e.advance(c, StepStart, text(c.lang, "hours_start"))
}

func (e *Engine) hoursStart(c *call) (Reply, error) {
	hm, ok := parseTime(c.text)
	if !ok {
		return text(c.lang, "hours_start"), nil
	}
	c.sess.Hours.Start = hm
	return e.advance(c, StepEnd, text(c.lang, "hours_end"))
}

func (e *Engine) hoursEnd(c *call) (Reply, error) {
	hm, ok := parseTime(c.text)
	if !ok {
		return text(c.lang, "hours_end"), nil
	}
	c.sess.Hours.End = hm
	return e.advance(c, StepBreak,
		withMenu(text(c.lang, "hours_break"), breakMenu(c.lang)))
}

func (e *Engine) hoursBreak(c *call) (Reply, error) {
	var breakMinutes int
	switch c.text {
	case i18n.T(c.lang, "btn_break_yes"):
		breakMinutes = 30
	case i18n.T(c.lang, "btn_break_no"):
		breakMinutes = 0
	default:
		return withMenu(text(c.lang, "hours_break"), breakMenu(c.lang)), nil
	}
	d := c.sess.Hours
	hours := computeHours(d.Start, d.End, breakMinutes)
	entry := domain.HoursEntry{
		UserID:       c.in.UserID,
		Date:         d.Date,
		StartTime:    d.Start,
		EndTime:      d.End,
		BreakMinutes: breakMinutes,
		Hours:        hours,
	}
	if err := e.store.AddHours(c.ctx, entry); err != nil {
		return Reply{}, fmt.Errorf("dialog: add hours: %w", err)
	}
	return e.finish(c, withMenu(
		textf(c.lang, "hours_saved", hours),
		mainMenu(c.user.Role, c.lang)))
}
