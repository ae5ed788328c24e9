// SPDX-License-Identifier: EPL-2.0

package converter

// State is the last pipeline stage a file reached.
type State int

const (
	Unprocessed State = iota
	Inspected
	Decoded
	Encoded
	Written
	Failed
)

var stateNames = [...]string{
	Unprocessed: "unprocessed",
	Inspected:   "inspected",
	Decoded:     "decoded",
	Encoded:     "encoded",
	Written:     "written",
	Failed:      "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}

	return stateNames[s]
}

// Step is a pipeline stage that can fail.
type Step int

const (
	StepNone Step = iota
	StepInspect
	StepDecode
	StepEncode
	StepWrite
)

var stepNames = [...]string{
	StepNone:    "none",
	StepInspect: "inspect",
	StepDecode:  "decode",
	StepEncode:  "encode",
	StepWrite:   "write",
}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return "unknown"
	}

	return stepNames[s]
}
