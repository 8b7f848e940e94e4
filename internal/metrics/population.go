package metrics

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const seriesCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// Population observes the live-cell count once per generation and
// keeps a rolling sample window for the exit chart.
type Population struct {
	name        string
	generations int
	peak        int
	final       int
	total       int
	series      []float64
}

func NewPopulation() *Population {
	return &Population{
		name:   "population",
		series: make([]float64, 0, seriesCapacity),
	}
}

func (p *Population) Name() string { return p.name }

func (p *Population) Observe(alive int) {
	p.generations++
	p.total += alive
	p.final = alive
	if alive > p.peak {
		p.peak = alive
	}
	p.series = append(p.series, float64(alive))
	if len(p.series) > seriesCapacity {
		p.series = p.series[1:]
	}
}

// Value returns the mean observed population.
func (p *Population) Value() float64 {
	if p.generations == 0 {
		return 0
	}
	return float64(p.total) / float64(p.generations)
}

func (p *Population) Generations() int { return p.generations }

func (p *Population) Reset() {
	p.generations = 0
	p.peak = 0
	p.final = 0
	p.total = 0
	p.series = p.series[:0]
}

// Summary renders the post-session report: counters plus a population
// chart over the most recent generations.
func (p *Population) Summary() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("GAME OF LIFE SESSION") + "\n")
	s.WriteString(labelStyle.Render("Generations") + valueStyle.Render(fmt.Sprintf("%d", p.generations)) + "\n")
	s.WriteString(labelStyle.Render("Peak alive") + valueStyle.Render(fmt.Sprintf("%d", p.peak)) + "\n")
	s.WriteString(labelStyle.Render("Final alive") + valueStyle.Render(fmt.Sprintf("%d", p.final)) + "\n")
	s.WriteString(labelStyle.Render("Mean alive") + valueStyle.Render(fmt.Sprintf("%.1f", p.Value())) + "\n")
	if len(p.series) > 1 {
		chart := asciigraph.Plot(p.series, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("Population"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	return s.String()
}
