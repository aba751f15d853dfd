package report

import (
	"io"

	"github.com/nao1215/p455w0rd/internal/model"
)

// Summary bundles everything the pre-flight report renders: the word
// set, the configuration it was analyzed under, the analysis itself,
// and any warnings the orchestrator collected.
type Summary struct {
	// Words is the deduplicated word set, in input order.
	Words []string `json:"words"`

	// Config is the combination configuration the analysis was run with.
	Config *model.CombinationConfig `json:"config"`

	// Analysis is the combinatorial analysis result.
	Analysis *model.Analysis `json:"analysis"`

	// Warnings lists resource or accuracy caveats, such as words with an
	// excessive number of leetable positions or a capped count.
	Warnings []string `json:"warnings,omitempty"`
}

// Writer defines the interface for analysis report output.
// Implementations render a Summary in a specific format.
type Writer interface {
	// Write renders the summary to the configured destination. It
	// returns the number of bytes written and any error encountered.
	Write(summary *Summary) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously, for outputting
// to both terminal and file. It stops on the first error.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the summary to all configured Writers and returns the
// total bytes written.
func (m *MultiWriter) Write(summary *Summary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
