package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/contrast"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// report is one rendered evaluation.
type report struct {
	Name    string                   `json:"name,omitempty" yaml:"name,omitempty"`
	Message string                   `json:"message" yaml:"message"`
	Expect  *contrast.Classification `json:"expect,omitempty" yaml:"expect,omitempty"`
	Result  contrast.Result          `json:"result" yaml:"result"`
}

func newReport(name string, res contrast.Result, tag language.Tag) report {
	return report{Name: name, Message: res.Message(tag), Result: res}
}

type renderer struct {
	w      io.Writer
	format string
	tag    language.Tag

	name   lipgloss.Style
	pass   lipgloss.Style
	warn   lipgloss.Style
	fail   lipgloss.Style
	detail lipgloss.Style
}

func newRenderer(w io.Writer, format string, tag language.Tag) *renderer {
	// Color support is detected from w, so piped output stays plain.
	lr := lipgloss.NewRenderer(w)
	return &renderer{
		w:      w,
		format: format,
		tag:    tag,
		name:   lr.NewStyle().Bold(true),
		pass:   lr.NewStyle().Foreground(lipgloss.Color("2")),
		warn:   lr.NewStyle().Foreground(lipgloss.Color("3")),
		fail:   lr.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		detail: lr.NewStyle().Faint(true),
	}
}

func (r *renderer) render(reports []report) error {
	switch r.format {
	case formatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case formatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, rep := range reports {
			if err := r.renderText(rep); err != nil {
				return err
			}
		}
		return nil
	}
}

func (r *renderer) renderText(rep report) error {
	style := r.pass
	switch rep.Result.Classification {
	case contrast.AAFailed:
		style = r.fail
	case contrast.AAPassedLarge, contrast.AAAPassedLarge:
		style = r.warn
	}

	line := style.Render(rep.Message)
	if rep.Name != "" {
		line = r.name.Render(rep.Name) + "  " + line
	}
	detail := r.detail.Render(fmt.Sprintf("(fg %s over bg %s)",
		rep.Result.ForegroundOver.Hex(), rep.Result.BackgroundOver.Hex()))

	_, err := fmt.Fprintf(r.w, "%s  %s\n", line, detail)
	return err
}
