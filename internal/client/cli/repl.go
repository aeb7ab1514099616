package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a stub.
type execIface interface {
	Reserve(ctx context.Context) error
	Mine(ctx context.Context) error
	Return(ctx context.Context) error
	Available(ctx context.Context) error
	Equipment(ctx context.Context) error
	History(ctx context.Context) error
}

const menu = `--- MAIN MENU ---
1. Reserve equipment
2. My reservations
3. Register return
4. Exit
Also: available, equipment, history, help`

// runREPL reads one command per line from reader and dispatches it to a.
// Menu numbers and names are both accepted:
//
//	1 | reserve     book a machine
//	2 | mine        list my active reservations
//	3 | return      return a reservation
//	4 | exit | quit leave the program
//	available       list free machines for a date and shift
//	equipment       list all machines
//	history         list reservations of one machine
//	help            show the menu
//
// Errors returned by handlers are not fatal; handlers report them to the
// user themselves. The loop exits on EOF or exit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	fmt.Fprintln(w, menu)

	for {
		fmt.Fprintf(w, "mac %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "help":
			fmt.Fprintln(w, menu)

		case "1", "reserve":
			_ = a.Reserve(ctx)

		case "2", "mine":
			_ = a.Mine(ctx)

		case "3", "return":
			_ = a.Return(ctx)

		case "available":
			_ = a.Available(ctx)

		case "equipment":
			_ = a.Equipment(ctx)

		case "history":
			_ = a.History(ctx)

		case "4", "exit", "quit":
			fmt.Fprintln(w, "Logging out. Goodbye!")
			return

		default:
			fmt.Fprintln(w, "Invalid option:", cmd)
		}
	}
}
