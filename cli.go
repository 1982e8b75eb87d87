package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"
	"go.goblog.app/sharer/pkgs/sharer"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var errUnknownProvider = errors.New("unknown provider")

func addShareFlags(cmd *cobra.Command, values map[string]*string) {
	for _, name := range sharer.OptionNames {
		v := new(string)
		values[name] = v
		cmd.Flags().StringVar(v, name, "", "share option "+name)
	}
	_ = cmd.MarkFlagRequired(sharer.OptionProvider)
	_ = cmd.MarkFlagRequired(sharer.OptionURL)
}

func optionsFromFlags(values map[string]*string) *sharer.Options {
	o := sharer.NewOptions(nil)
	for name, v := range values {
		if *v != "" {
			o.Set(name, *v)
		}
	}
	return o
}

// printWindow writes what a browser would do instead of doing it.
type printWindow struct {
	w      io.Writer
	format string
	err    error
}

type printedAction struct {
	Action   string           `json:"action" yaml:"action"`
	URL      string           `json:"url" yaml:"url"`
	Features *sharer.Features `json:"features,omitempty" yaml:"features,omitempty"`
}

func (p *printWindow) Screen() sharer.Screen {
	return sharer.Screen{}
}

func (p *printWindow) Navigate(url string) {
	p.print(&printedAction{Action: "navigate", URL: url})
}

func (p *printWindow) Open(url string, features sharer.Features) sharer.Popup {
	p.print(&printedAction{Action: "popup", URL: url, Features: &features})
	return nil
}

func (p *printWindow) CanFocus() bool {
	return false
}

func (p *printWindow) print(action *printedAction) {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		p.err = enc.Encode(action)
	case "yaml":
		p.err = yaml.NewEncoder(p.w).Encode(action)
	default:
		if action.Features != nil {
			_, p.err = fmt.Fprintf(p.w, "%s %s (%dx%d)\n", action.Action, action.URL, action.Features.Width, action.Features.Height)
			return
		}
		_, p.err = fmt.Fprintf(p.w, "%s %s\n", action.Action, action.URL)
	}
}

// browserWindow hands share links to the system browser or mail client.
type browserWindow struct {
	open func(url string) error
	err  error
}

func (b *browserWindow) Screen() sharer.Screen {
	return sharer.Screen{}
}

func (b *browserWindow) Navigate(url string) {
	b.err = b.open(url)
}

func (b *browserWindow) Open(url string, _ sharer.Features) sharer.Popup {
	b.err = b.open(url)
	return nil
}

func (b *browserWindow) CanFocus() bool {
	return false
}

func openInBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}

// runShare performs one share with w as host, like a single click on a
// share button.
func (a *sharerApp) runShare(o *sharer.Options, w sharer.Window) error {
	el := &requestElement{}
	s, err := sharer.New(el, o, w)
	if err != nil {
		return err
	}
	defer s.Destroy()
	if !a.providerEnabled(o.Provider()) {
		return fmt.Errorf("%w: %s", errUnknownProvider, o.Raw(sharer.OptionProvider))
	}
	el.click()
	return nil
}

func (a *sharerApp) resolveCommand() *cobra.Command {
	values := map[string]*string{}
	var format string
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the share action for the given options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw := &printWindow{w: cmd.OutOrStdout(), format: format}
			if err := a.runShare(optionsFromFlags(values), pw); err != nil {
				return err
			}
			return pw.err
		},
	}
	addShareFlags(cmd, values)
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json or yaml")
	return cmd
}

func (a *sharerApp) openCommand() *cobra.Command {
	values := map[string]*string{}
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open the share link in the system browser",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			bw := &browserWindow{open: openInBrowser}
			if err := a.runShare(optionsFromFlags(values), bw); err != nil {
				return err
			}
			if bw.err != nil {
				a.error("Failed to open browser", zap.Error(bw.err))
			}
			return bw.err
		},
	}
	addShareFlags(cmd, values)
	return cmd
}
