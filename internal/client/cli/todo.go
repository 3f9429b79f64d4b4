package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"taskvault/internal/client/todos"
)

func (a *App) addTodo(ctx context.Context) {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil || title == "" {
		fmt.Println("A title is required.")
		return
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		description = ""
	}

	todo := a.todos.Add(title, description)
	a.log.Debug(ctx, "todo added", "id", todo.ID)
	fmt.Printf("Added #%d: %s\n", len(a.todos.List()), todo.Title)
}

func (a *App) listTodos() {
	items := a.todos.List()
	if len(items) == 0 {
		fmt.Println("Nothing to do.")
		return
	}
	for i, item := range items {
		mark := " "
		if item.Completed {
			mark = "x"
		}
		fmt.Printf("%3d. [%s] %s\n", i+1, mark, item.Title)
		if item.Description != "" {
			fmt.Printf("        %s\n", item.Description)
		}
	}
}

func (a *App) toggleTodo(arg string) {
	id, ok := a.resolveTodoID(arg)
	if !ok {
		return
	}
	todo, err := a.todos.Toggle(id)
	if errors.Is(err, todos.ErrNotFound) {
		fmt.Println("No such todo:", arg)
		return
	}
	if todo.Completed {
		fmt.Printf("Done: %s\n", todo.Title)
	} else {
		fmt.Printf("Reopened: %s\n", todo.Title)
	}
}

func (a *App) deleteTodo(arg string) {
	id, ok := a.resolveTodoID(arg)
	if !ok {
		return
	}
	if err := a.todos.Delete(id); errors.Is(err, todos.ErrNotFound) {
		fmt.Println("No such todo:", arg)
	}
}

// resolveTodoID accepts either the 1-based position shown by list or a raw
// item id.
func (a *App) resolveTodoID(arg string) (string, bool) {
	if n, err := strconv.Atoi(arg); err == nil {
		items := a.todos.List()
		if n < 1 || n > len(items) {
			fmt.Println("No such todo:", arg)
			return "", false
		}
		return items[n-1].ID, true
	}
	return arg, true
}
