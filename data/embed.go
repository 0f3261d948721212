// Package data embeds the MariaDB bootstrap scripts used by the
// testcontainers setup and by fresh deployments.
package data

import (
	_ "embed"
)

//go:embed initdb/mariadb/002-ddl-tables.sql
var MariaDBSchema string

//go:embed initdb/mariadb/003-ddl-privileges.sql
var MariaDBPrivileges string
