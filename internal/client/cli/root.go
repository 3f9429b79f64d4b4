package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

func (a *App) getStatus() string {
	sess := a.session.Session()
	if sess.Authenticated {
		return fmt.Sprintf("(%s)", sess.User.Username)
	}
	return ""
}

// Root runs the prompt loop until exit or EOF.
func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to TaskVault (type 'help' for commands)")

	for {
		fmt.Printf("tv %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || len(line) == 0) {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: list, add, done <n>, rm <n>, whoami, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, whoami, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			a.Whoami()
		case "add":
			a.addTodo(ctx)
		case "list":
			a.listTodos()
		case "done":
			if len(args) == 0 {
				fmt.Println("Usage: done <n>")
				continue
			}
			a.toggleTodo(args[0])
		case "rm":
			if len(args) == 0 {
				fmt.Println("Usage: rm <n>")
				continue
			}
			a.deleteTodo(args[0])
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
