package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/trezcool/lms/core"
	"github.com/trezcool/lms/core/auth"
)

// addUser registers nu in the user directory, overwriting any user with the same email.
func (cli *commandLine) addUser(nu auth.NewUser) error {
	validate, _ := core.NewValidator()
	if err := nu.Validate(validate); err != nil {
		return err
	}

	store, err := cli.openStore()
	if err != nil {
		return errors.Wrap(err, "opening store")
	}
	defer store.Close()

	usr, err := cli.newAuthSvc(store).Register(context.Background(), nu)
	if err != nil {
		return err
	}
	cli.logger.Info("user added", usr)
	fmt.Fprintf(cli.out, "added %s (%s)\n", usr.Email, usr.Role)
	return nil
}

func (cli *commandLine) listUsers() error {
	store, err := cli.openStore()
	if err != nil {
		return errors.Wrap(err, "opening store")
	}
	defer store.Close()

	users, err := cli.newAuthSvc(store).QueryAll(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EMAIL\tNAME\tROLE\tREGISTERED AT")
	for _, usr := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", usr.Email, usr.Name, usr.Role, usr.RegisteredAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
