// SPDX-License-Identifier: MIT

// Package report renders pipeline outcomes for the command line, either as
// styled text or as indented JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/simcluster/pipeline"
)

// Report is the serialisable view of a batch.
type Report struct {
	Runs []Run `json:"runs"`
}

// Run is one clustered job.
type Run struct {
	Name              string    `json:"name"`
	RunID             string    `json:"run_id"`
	Size              int       `json:"size"`
	CommunityStrength float64   `json:"community_strength"`
	Clusters          []Cluster `json:"clusters"`
}

// Cluster is one block of a run's partition.
type Cluster struct {
	Members            []string `json:"members"`
	CommunityStrength  float64  `json:"community_strength"`
	NormalizedStrength float64  `json:"normalized_strength"`
	AverageSimilarity  float64  `json:"average_similarity"`
}

// FromOutcomes converts outcomes, keeping their order.
func FromOutcomes(outcomes []pipeline.Outcome) Report {
	rep := Report{Runs: make([]Run, 0, len(outcomes))}
	for _, o := range outcomes {
		run := Run{
			Name:              o.Name,
			RunID:             o.RunID.String(),
			Size:              o.Result.Size(),
			CommunityStrength: o.Result.CommunityStrength(),
			Clusters:          make([]Cluster, 0, len(o.Result.Clusters())),
		}
		for _, c := range o.Result.Clusters() {
			members := make([]string, 0, c.Size())
			for _, s := range c.Members() {
				members = append(members, s.Name)
			}
			run.Clusters = append(run.Clusters, Cluster{
				Members:            members,
				CommunityStrength:  c.CommunityStrength(),
				NormalizedStrength: c.NormalizedCommunityStrength(),
				AverageSimilarity:  c.AverageSimilarity(),
			})
		}
		rep.Runs = append(rep.Runs, run)
	}

	return rep
}

// WriteJSON writes rep as indented JSON followed by a newline.
func WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}

	return nil
}

// styles are bound to the renderer of the destination writer, so output to
// files and pipes carries no escape sequences.
type styles struct {
	title  lipgloss.Style
	muted  lipgloss.Style
	strong lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
		strong: r.NewStyle().Bold(true),
	}
}

// WriteText writes one header line per run followed by one line per cluster.
func WriteText(w io.Writer, rep Report) error {
	st := newStyles(w)
	var b strings.Builder
	for i, run := range rep.Runs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(st.title.Render(run.Name))
		b.WriteString(st.muted.Render(fmt.Sprintf("  run=%s", run.RunID)))
		fmt.Fprintf(&b, "  clusters=%d members=%d strength=%.4f\n",
			len(run.Clusters), run.Size, run.CommunityStrength)
		for ci, c := range run.Clusters {
			fmt.Fprintf(&b, "  %s %s  strength=%.4f avg=%.4f\n",
				st.strong.Render(fmt.Sprintf("#%d", ci+1)),
				"["+strings.Join(c.Members, ", ")+"]",
				c.CommunityStrength, c.AverageSimilarity)
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}

	return nil
}
