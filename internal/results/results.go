package results

import (
	"time"
)

// DocumentResult counts the query outcomes for one input document.
type DocumentResult struct {
	Source  string
	Index   int
	Queries int
	Matched int
	Missed  int
	Failed  int
}

type DocumentResultBuilder struct {
	result DocumentResult
}

func NewDocumentResultBuilder(source string, index int) *DocumentResultBuilder {
	return &DocumentResultBuilder{result: DocumentResult{Source: source, Index: index}}
}

func (b *DocumentResultBuilder) Matched() *DocumentResultBuilder {
	b.result.Queries++
	b.result.Matched++
	return b
}

func (b *DocumentResultBuilder) Missed() *DocumentResultBuilder {
	b.result.Queries++
	b.result.Missed++
	return b
}

func (b *DocumentResultBuilder) Failed() *DocumentResultBuilder {
	b.result.Queries++
	b.result.Failed++
	return b
}

func (b *DocumentResultBuilder) Build() DocumentResult {
	return b.result
}

// Summary aggregates a whole run over every input source.
type Summary struct {
	RunID         string
	Sources       int
	Documents     int
	Queries       int
	Matched       int
	Missed        int
	Failed        int
	DecodeErrors  int
	TotalDuration time.Duration
}

func NewSummary(runID string) *Summary {
	return &Summary{RunID: runID}
}

func (s *Summary) Add(result DocumentResult) {
	s.Documents++
	s.Queries += result.Queries
	s.Matched += result.Matched
	s.Missed += result.Missed
	s.Failed += result.Failed
}

func (s *Summary) AddSource() {
	s.Sources++
}

func (s *Summary) AddDecodeError() {
	s.DecodeErrors++
}

func (s *Summary) SetTotalDuration(duration time.Duration) {
	s.TotalDuration = duration
}

func (s *Summary) DocumentsPerSecond() float64 {
	if s.TotalDuration == 0 {
		return 0
	}
	return float64(s.Documents) / s.TotalDuration.Seconds()
}

func (s *Summary) MatchPercentage() float64 {
	if s.Queries == 0 {
		return 0
	}
	return float64(s.Matched) / float64(s.Queries) * 100
}

// AnyMatched reports whether at least one query found a value.
func (s *Summary) AnyMatched() bool {
	return s.Matched > 0
}
