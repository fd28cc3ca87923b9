package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Alia5/inputsync/device/keyboard"
	"github.com/Alia5/inputsync/hook"
)

type Codes struct {
	Mouse    bool   `help:"Only list mouse buttons"`
	Keyboard bool   `help:"Only list keyboard keys"`
	Key      string `help:"Only list codes mapped to this canonical key name (e.g. LeftShift)"`
}

// Run is called by Kong when the codes command is executed.
func (c *Codes) Run() error {
	return c.Print(os.Stdout, hook.DefaultCodes())
}

// Print writes one line per mapping in table.
func (c *Codes) Print(w io.Writer, table *hook.CodeTable) error {
	rows := table.Mappings()
	if len(rows) == 0 {
		return fmt.Errorf("no code table for this platform (%s)", table.Name)
	}
	target := ""
	if c.Key != "" {
		k, err := keyboard.ParseKey(c.Key)
		if err != nil {
			return err
		}
		target = k.String()
	}
	if _, err := fmt.Fprintf(w, "# %s\n", table.Name); err != nil {
		return err
	}
	for _, m := range rows {
		if (c.Mouse && !m.Mouse) || (c.Keyboard && m.Mouse) {
			continue
		}
		if target != "" && (m.Mouse || m.Target != target) {
			continue
		}
		kind := "key"
		if m.Mouse {
			kind = "button"
		}
		if _, err := fmt.Fprintf(w, "%-6s 0x%03x  %s\n", kind, m.Code, m.Target); err != nil {
			return err
		}
	}
	return nil
}
