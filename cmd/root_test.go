/*
 * ULP BFF
 * Copyright (C) 2023 ULP community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushi-tekdi/ulp-bff/core"
)

func TestCreateSystem(t *testing.T) {
	system := CreateSystem()

	names := make([]string, 0)
	system.VisitEngines(func(engine core.Engine) {
		if named, ok := engine.(core.Named); ok {
			names = append(names, named.Name())
		}
	})

	assert.Contains(t, names, "IdP")
	assert.Contains(t, names, "DID")
	assert.Contains(t, names, "Registry")
	assert.Contains(t, names, "Credential")
	assert.Contains(t, names, "Wallet")
	assert.Contains(t, names, "PDF")
	assert.Contains(t, names, "SSO")
	// status, metrics and the API wrapper must be routable
	assert.NotEmpty(t, system.Routers)
}

func TestCreateCommand(t *testing.T) {
	command := CreateCommand(CreateSystem())

	subcommands := make([]string, 0)
	for _, subcommand := range command.Commands() {
		subcommands = append(subcommands, subcommand.Name())
	}
	assert.Contains(t, subcommands, "server")
	assert.Contains(t, subcommands, "config")
	require.NotNil(t, command.PersistentFlags().Lookup("configfile"))
}
