package cli

import (
	"context"
	"fmt"
	"os"

	"taskvault/internal/client/models"
	"taskvault/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and tries to authenticate. The session
// store's error message (already generic) is shown on failure. The password
// byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	creds := models.Credentials{Username: username, Password: string(password)}
	if err := a.session.Login(ctx, creds); err != nil {
		fmt.Println(a.session.Session().Err)
		return err
	}

	fmt.Printf("Welcome back, %s!\n", a.session.Session().User.Username)
	return nil
}

// Register prompts for account details and attempts to create the account.
// On success the session store has already tried to log in automatically;
// when that failed the session error tells the user to log in manually.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	data := models.RegisterData{
		Email:           email,
		Username:        username,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	}

	if err := a.session.Register(ctx, data); err != nil {
		fmt.Println(a.session.Session().Err)
		return err
	}

	if sess := a.session.Session(); sess.Authenticated {
		fmt.Printf("Welcome, %s!\n", sess.User.Username)
	} else {
		// Registered, but the automatic login did not go through.
		fmt.Println(sess.Err)
	}
	return nil
}

// Logout ends the session. It always succeeds locally.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// Whoami prints the current user, if any.
func (a *App) Whoami() {
	sess := a.session.Session()
	if !sess.Authenticated {
		fmt.Println("Not logged in.")
		return
	}
	fmt.Printf("%s <%s>\n", sess.User.Username, sess.User.Email)
}
