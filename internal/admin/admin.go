// Package admin implements the operator CLI. Its only command registers an
// account directly against the configured database:
//
//	admin register -name Ann -email ann@x.com
//
// Missing name or email are prompted for; the password is always read from
// the terminal without echo and asked twice.
package admin

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/neoinbox/internal/common"
	"github.com/dmitrijs2005/neoinbox/internal/flagx"
	"github.com/dmitrijs2005/neoinbox/internal/server/services"
)

// Registrar is the part of services.UserService the CLI needs.
type Registrar interface {
	Register(ctx context.Context, name, email, password string) (int64, error)
}

var ErrUsage = errors.New("usage: admin register [-name NAME] [-email EMAIL]")

// Run executes the command in args, typically os.Args[1:]. Flags that belong
// to the config loader are ignored.
func Run(ctx context.Context, args []string, svc Registrar, in io.Reader, out io.Writer) error {
	if len(args) == 0 || args[0] != "register" {
		return ErrUsage
	}
	return register(ctx, args[1:], svc, bufio.NewReader(in), out)
}

func register(ctx context.Context, args []string, svc Registrar, reader *bufio.Reader, out io.Writer) error {
	var input services.RegisterInput

	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&input.Name, "name", "", "display name")
	fs.StringVar(&input.Email, "email", "", "login email")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-name", "-email"})); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	var err error
	if input.Name == "" {
		if input.Name, err = GetSimpleText(reader, "Enter name", out); err != nil {
			return err
		}
	}
	if input.Email == "" {
		if input.Email, err = GetSimpleText(reader, "Enter email", out); err != nil {
			return err
		}
	}

	if input.Password, err = GetPassword("Enter password", out); err != nil {
		return err
	}
	confirm, err := GetPassword("Repeat password", out)
	if err != nil {
		return err
	}
	if confirm != input.Password {
		return errors.New("passwords do not match")
	}

	if err := input.Validate(); err != nil {
		return err
	}

	id, err := svc.Register(ctx, input.Name, input.Email, input.Password)
	switch {
	case errors.Is(err, common.ErrorEmailTaken):
		return errors.New("email is already registered")
	case err != nil:
		return err
	}

	fmt.Fprintf(out, "registered user %d\n", id)
	return nil
}
