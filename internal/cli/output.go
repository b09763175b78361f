package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/drives"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/resolver"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(s)); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, MsgErrUnknownOutput, s)
}

func renderResolution(w io.Writer, res resolver.Resolution, format outputFormat) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case formatYAML:
		out, err := yaml.Marshal(res)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to render resolution")
		}
		_, err = w.Write(out)
		return err
	}

	styled := isTerminal(w)
	paint := func(s lipgloss.Style, v string) string {
		if !styled {
			return v
		}
		return s.Render(v)
	}

	rows := [][2]string{
		{"state", paint(style.StateStyle(res.State), string(res.State))},
		{"path", paint(style.PathStyle, res.Path)},
		{"original", res.Original},
	}
	if res.ServerShare != "" {
		rows = append(rows, [2]string{"share", res.ServerShare})
	}
	if res.Letter != "" {
		rows = append(rows, [2]string{"letter", string(res.Letter)})
	}
	if res.State == resolver.StateCreateFailed {
		rows = append(rows, [2]string{"exit code", fmt.Sprint(res.ExitCode)})
	}

	for _, row := range rows {
		fmt.Fprintf(w, "%s %s\n", paint(style.LabelStyle, fmt.Sprintf("%-10s", row[0]+":")), row[1])
	}
	return nil
}

func renderSnapshot(w io.Writer, snap resolver.Snapshot) error {
	if len(snap.Mappings) == 0 {
		fmt.Fprintln(w, MsgNoMappings)
	} else {
		data := pterm.TableData{{"Letter", "Target"}}
		for _, m := range snap.Mappings {
			data = append(data, []string{string(m.Letter), m.Target})
		}

		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to render mapping table")
		}
		fmt.Fprintln(w, table)
	}

	if used := snap.Used.Letters(); len(used) > 0 {
		fmt.Fprintf(w, MsgUsedLetters, joinLetters(used))
	}

	if len(snap.Free) == 0 {
		fmt.Fprintln(w, MsgNoFreeLetters)
		return nil
	}
	fmt.Fprintf(w, MsgFreeLetters, joinLetters(snap.Free))
	return nil
}

func joinLetters(letters []drives.Letter) string {
	out := make([]string, len(letters))
	for i, l := range letters {
		out[i] = string(l)
	}
	return strings.Join(out, " ")
}
