package main

import (
	"fmt"

	"github.com/trezcool/lms/storage/sqlstore"
)

var migrateFunc = sqlstore.Migrate // mockable

func (cli *commandLine) migrate() error {
	if !sqlstore.IsSQLEngine(cli.conf.Database.Engine) {
		return fmt.Errorf("database engine %q has no migrations", cli.conf.Database.Engine)
	}
	if err := migrateFunc(cli.conf); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s: migrations applied\n", cli.conf.Database.Engine)
	return nil
}
