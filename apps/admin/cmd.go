package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/lms/core"
	"github.com/trezcool/lms/core/auth"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf       *core.Config
	logger     core.Logger
	out        io.Writer
	openStore  func() (core.Store, error)
	newAuthSvc func(store core.Store) *auth.Service
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  migrate - apply the SQL migrations of the configured database engine")
	fmt.Fprintln(cli.out, "  adduser -email EMAIL -name NAME [-role ROLE] - register a user; the password is prompted next")
	fmt.Fprintln(cli.out, "  listusers - print the registered users")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ContinueOnError)
	addUserCmd.SetOutput(cli.out)
	addUserEmail := addUserCmd.String("email", "", "The user's email.")
	addUserName := addUserCmd.String("name", "", "The user's name.")
	addUserRole := addUserCmd.String("role", "", "The user's role (defaults to auth.default_role).")

	switch args[1] {
	case "migrate":
		return cli.migrate()
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		email := core.CleanString(*addUserEmail, true /* lower */)
		name := core.CleanString(*addUserName)
		role := core.CleanString(*addUserRole, true /* lower */)
		if email == "" || name == "" {
			addUserCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(auth.NewUser{
			Email:    &email,
			Password: core.Ptr(string(pwd)),
			Name:     &name,
			Role:     &role,
		})
	case "listusers":
		return cli.listUsers()
	default:
		cli.printUsage()
		return errHelp
	}
}
