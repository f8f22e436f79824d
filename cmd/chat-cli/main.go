package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/satriahrh/sobesednik/domain"
)

var (
	replyColor = color.New(color.FgCyan)
	errorColor = color.New(color.FgRed, color.Bold)
	infoColor  = color.New(color.FgYellow)
)

type options struct {
	server      string
	provider    string
	apiKey      string
	personality string
	outDir      string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "chat-cli",
		Short: "talk to the relay from a terminal",
		Long: `Interactive chat over the relay's WebSocket endpoint.

Type a message and press Enter. Commands:
  /tts <text>   voice text and save the mp3
  /reset        forget the conversation
  /exit         quit`,
		Example: `  $ chat-cli --provider groq --api-key $GROQ_API_KEY --personality Алиса`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVarP(&opts.server, "server", "s", "ws://localhost:5000/ws", "relay WebSocket URL")
	flags.StringVarP(&opts.provider, "provider", "p", string(domain.ProviderGroq), "groq, openai or google")
	flags.StringVarP(&opts.apiKey, "api-key", "k", os.Getenv("CHAT_API_KEY"), "provider API key")
	flags.StringVar(&opts.personality, "personality", domain.DefaultPersonality, "personality name")
	flags.StringVar(&opts.outDir, "out-dir", os.TempDir(), "directory for synthesized audio")

	return cmd
}

func run(opts options) error {
	conn, err := dial(opts.server)
	if err != nil {
		errorColor.Println(err)
		return err
	}
	defer func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	}()

	s := &session{
		conn:        conn,
		provider:    domain.Provider(opts.provider),
		apiKey:      opts.apiKey,
		personality: opts.personality,
		outDir:      opts.outDir,
	}

	infoColor.Printf("Connected to %s as %s via %s\n", opts.server, opts.personality, opts.provider)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == "/exit":
			return nil
		case line == "/reset":
			s.history = nil
			infoColor.Println("History cleared")
		case strings.HasPrefix(line, "/tts "):
			path, err := s.speak(strings.TrimPrefix(line, "/tts "))
			if err != nil {
				errorColor.Printf("tts: %v\n", err)
				continue
			}
			infoColor.Printf("Saved %s\n", path)
		default:
			reply, err := s.ask(line)
			if err != nil {
				errorColor.Printf("chat: %v\n", err)
				continue
			}
			replyColor.Println(reply)
		}
	}
}
