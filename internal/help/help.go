// Package help holds f's usage text and per-flag help topics.
package help

import (
	"slices"

	"github.com/jparise/f/internal/translate"
)

// Topic is a block of help text.
type Topic struct {
	Name string
	Text string
}

var (
	Time      = Topic{"time", timeText}
	Size      = Topic{"size", sizeText}
	Type      = Topic{"type", typeText}
	Exec      = Topic{"exec", execText}
	ExecBatch = Topic{"exec-batch", execBatchText}
	Usage     = Topic{"usage", usageText}
)

type rule struct {
	match func(o *translate.Options) bool
	topic Topic
}

// Topic-specific help always wins over the general usage text.
var rules = []rule{
	{
		match: func(o *translate.Options) bool {
			return o.ChangedWithin == translate.HelpValue || o.ChangedBefore == translate.HelpValue
		},
		topic: Time,
	},
	{
		match: func(o *translate.Options) bool {
			return slices.Contains(o.Sizes, translate.HelpValue)
		},
		topic: Size,
	},
	{
		match: func(o *translate.Options) bool {
			return slices.Contains(translate.TypeFilters(o), translate.HelpValue)
		},
		topic: Type,
	},
	{
		match: func(o *translate.Options) bool {
			return o.Exec.Mode == translate.ExecEach && o.Exec.Command == translate.HelpValue
		},
		topic: Exec,
	},
	{
		match: func(o *translate.Options) bool {
			return o.Exec.Mode == translate.ExecBatch && o.Exec.Command == translate.HelpValue
		},
		topic: ExecBatch,
	},
	{
		match: func(o *translate.Options) bool { return o.ShowHelp },
		topic: Usage,
	},
}

// Select returns the help topic requested by the options, if any.
func Select(o *translate.Options) (Topic, bool) {
	for _, r := range rules {
		if r.match(o) {
			return r.topic, true
		}
	}
	return Topic{}, false
}
