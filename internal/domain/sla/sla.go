// Package sla computes and evaluates response and resolution deadlines.
// Breaches are derived at read time; nothing here is stored or scheduled.
package sla

import "time"

// Policy is the pair of targets attached to a priority level.
type Policy struct {
	ResponseHours   int
	ResolutionHours int
}

var policies = map[int]Policy{
	1: {ResponseHours: 24, ResolutionHours: 72},
	2: {ResponseHours: 8, ResolutionHours: 24},
	3: {ResponseHours: 4, ResolutionHours: 12},
	4: {ResponseHours: 1, ResolutionHours: 4},
}

func PolicyFor(level int) (Policy, bool) {
	p, ok := policies[level]
	return p, ok
}

type Deadlines struct {
	ResponseDue   *time.Time
	ResolutionDue *time.Time
}

// Compute returns the deadlines for a priority level measured from now.
// An unknown level yields no deadlines.
func Compute(level int, now time.Time) Deadlines {
	p, ok := PolicyFor(level)
	if !ok {
		return Deadlines{}
	}
	response := now.Add(time.Duration(p.ResponseHours) * time.Hour)
	resolution := now.Add(time.Duration(p.ResolutionHours) * time.Hour)
	return Deadlines{ResponseDue: &response, ResolutionDue: &resolution}
}

type Status struct {
	ResponseBreached   bool `json:"response_breached"`
	ResolutionBreached bool `json:"resolution_breached"`
}

func (s Status) Breached() bool {
	return s.ResponseBreached || s.ResolutionBreached
}

// Evaluate reports breaches as of now. A ticket without a deadline can never
// breach it.
func Evaluate(d Deadlines, firstResponseAt *time.Time, terminal bool, now time.Time) Status {
	return Status{
		ResponseBreached:   firstResponseAt == nil && d.ResponseDue != nil && now.After(*d.ResponseDue),
		ResolutionBreached: !terminal && d.ResolutionDue != nil && now.After(*d.ResolutionDue),
	}
}

// IsCompliant reports whether a ticket met both targets. A missing response or
// resolution timestamp counts as met; a timestamp with no deadline to compare
// against does not.
func IsCompliant(d Deadlines, firstResponseAt, resolvedAt *time.Time) bool {
	return metBy(firstResponseAt, d.ResponseDue) && metBy(resolvedAt, d.ResolutionDue)
}

func metBy(at, due *time.Time) bool {
	if at == nil {
		return true
	}
	if due == nil {
		return false
	}
	return !at.After(*due)
}
