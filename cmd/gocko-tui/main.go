// Command gocko-tui is a headless TUI shell: it navigates to a URL, then
// prints the parsed DOM and the computed layout tree to stdout.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"gocko/engine"
	"gocko/internal/logging"
	"gocko/layout"
	"gocko/protocol"
	"gocko/uri"
)

func dumpLayout(page *engine.PageState) string {
	return layout.Dump(page.Layout)
}

const defaultURL = "http://www.example.com"

func newHandler() protocol.Handler {
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return protocol.NewCachingHandler(protocol.NewDispatcher(protocol.SchemeHandlers{
		"http":  protocol.NewHTTPHandler(client),
		"https": protocol.NewHTTPHandler(client),
		"file":  protocol.FileHandler{},
	}))
}

func newRootCmd() *cobra.Command {
	var layoutWidth, viewportHeight float64
	var darkMode, enableJS bool

	cmd := &cobra.Command{
		Use:   "gocko-tui [url]",
		Short: "Navigate to a URL and print its DOM and layout trees.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := defaultURL
			if len(args) == 1 {
				target = args[0]
			}

			u, err := uri.Parse(target, nil)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "invalid url:", err)
				os.Exit(1)
			}

			e := engine.New(newHandler())
			e.Log = logging.New(logging.LevelFromEnv())

			page, err := e.Navigate(context.Background(), u, engine.NavigateOptions{
				LayoutWidth:    layoutWidth,
				ViewportHeight: viewportHeight,
				DarkMode:       darkMode,
				EnableJS:       enableJS,
			})
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "navigation failed:", err)
				os.Exit(1)
			}

			fmt.Fprintln(cmd.OutOrStdout(), page.Document.Dump())
			fmt.Fprintln(cmd.OutOrStdout(), dumpLayout(page))
			return nil
		},
	}

	cmd.Flags().Float64Var(&layoutWidth, "width", 800, "layout viewport width in pixels")
	cmd.Flags().Float64Var(&viewportHeight, "height", 600, "layout viewport height in pixels")
	cmd.Flags().BoolVar(&darkMode, "dark", false, "evaluate prefers-color-scheme: dark")
	cmd.Flags().BoolVar(&enableJS, "enable-js", false, "tokenise (not execute) discovered <script> content")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
