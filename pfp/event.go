/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pfp

import (
	"fmt"
	"time"
)

// Event types for the progress-reporting Listener mechanism, modeled after
// kanzi-go's compression Event/Listener pair.
const (
	EvtConvertStart = iota
	EvtConvertEnd
	EvtMergeStart
	EvtMergeEnd
)

// Event carries progress information out of the SA/LCP converter and the
// BWT merger: either a free-form message or structured counters, never both.
type Event struct {
	eventType int
	eventTime time.Time
	msg       string
	dasize    int64
	fullWords int64
	easyBWTs  int64
	hardBWTs  int64
	elapsed   time.Duration
}

// NewEventFromString creates an Event that wraps a plain message.
func NewEventFromString(evtType int, msg string) *Event {
	return &Event{eventType: evtType, eventTime: time.Now(), msg: msg}
}

// newCountersEvent creates an Event carrying the merge pass counters.
func newCountersEvent(evtType int, dasize, fullWords, easyBWTs, hardBWTs int64, elapsed time.Duration) *Event {
	return &Event{
		eventType: evtType,
		eventTime: time.Now(),
		dasize:    dasize,
		fullWords: fullWords,
		easyBWTs:  easyBWTs,
		hardBWTs:  hardBWTs,
		elapsed:   elapsed,
	}
}

// Type returns the event type.
func (this *Event) Type() int {
	return this.eventType
}

// Time returns the time the event was created.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// FullWords returns the full-word suffix count carried by a merge-end event.
func (this *Event) FullWords() int64 {
	return this.fullWords
}

// EasyBWTs returns the easy-merge byte count carried by a merge-end event.
func (this *Event) EasyBWTs() int64 {
	return this.easyBWTs
}

// HardBWTs returns the hard-merge byte count carried by a merge-end event.
func (this *Event) HardBWTs() int64 {
	return this.hardBWTs
}

// Elapsed returns the wall clock duration carried by an end event.
func (this *Event) Elapsed() time.Duration {
	return this.elapsed
}

// String returns a human-readable representation of this event, matching the
// progress lines of the original tool ("Converting ...", "Conversion took
// ...", "Full words: ...", "Easy bwt chars: ...", "Hard bwt chars: ...").
func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	switch this.eventType {
	case EvtConvertEnd:
		return fmt.Sprintf("Conversion took %v wall clock time. DA has size: %d. Dictionary words found: %d",
			this.elapsed, this.dasize, this.fullWords)

	case EvtMergeEnd:
		return fmt.Sprintf("Full words: %d\nEasy bwt chars: %d\nHard bwt chars: %d\nGenerating the final BWT took %v wall clock time",
			this.fullWords, this.easyBWTs, this.hardBWTs, this.elapsed)

	default:
		return fmt.Sprintf("{type:%d, time:%d}", this.eventType, this.eventTime.UnixNano()/1000000)
	}
}

// Listener is implemented by progress-event consumers, such as the CLI's
// stderr printer.
type Listener interface {
	ProcessEvent(evt *Event)
}

func notify(listeners []Listener, evt *Event) {
	for _, l := range listeners {
		if l != nil {
			l.ProcessEvent(evt)
		}
	}
}
