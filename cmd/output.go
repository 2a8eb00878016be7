// Copyright (C) 2025-2026 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cardinalhq/skipmetrics/config"
	"github.com/cardinalhq/skipmetrics/internal/dataskipping"
)

func writeMetrics(w io.Writer, cfg config.OutputConfig, n dataskipping.NamedMetrics) error {
	switch cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		if cfg.Indent {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(n); err != nil {
			return fmt.Errorf("failed to encode metrics as json: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		if cfg.Indent {
			enc.SetIndent(2)
		}
		if err := enc.Encode(n); err != nil {
			return fmt.Errorf("failed to encode metrics as yaml: %w", err)
		}
		return enc.Close()
	case config.FormatText:
		return writeText(w, n)
	default:
		return fmt.Errorf("unsupported output format %q", cfg.Format)
	}
}

// writeText prints one line per entry, in canonical type order.
func writeText(w io.Writer, n dataskipping.NamedMetrics) error {
	for _, name := range n.Names() {
		m, _ := n.Get(name)
		if m.Len() == 0 {
			if _, err := fmt.Fprintf(w, "%s\t(none)\n", name); err != nil {
				return err
			}
			continue
		}
		for _, mt := range m.Types() {
			e, _ := m.Get(mt)
			if _, err := fmt.Fprintf(w, "%s\t%s\tsplits=%d\tbytes=%d\n", name, mt, e.SplitCount, e.DataSize); err != nil {
				return err
			}
		}
	}
	return nil
}
