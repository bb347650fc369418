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
	"context"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rushi-tekdi/ulp-bff/core"
	"github.com/rushi-tekdi/ulp-bff/credential"
	"github.com/rushi-tekdi/ulp-bff/didsvc"
	"github.com/rushi-tekdi/ulp-bff/idp"
	"github.com/rushi-tekdi/ulp-bff/pdf"
	"github.com/rushi-tekdi/ulp-bff/registry"
	"github.com/rushi-tekdi/ulp-bff/sso"
	apiV1 "github.com/rushi-tekdi/ulp-bff/sso/api/v1"
	"github.com/rushi-tekdi/ulp-bff/wallet"
)

var stdOutWriter io.Writer = os.Stdout

const shutdownTimeout = 5 * time.Second

func createRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ulp-bff",
		Short: "ULP BFF which federates student, teacher and school identities across the IdP, DID service, Registry and Wallet.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
}

func createPrintConfigCommand(system *core.System) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Prints the current config",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("Current system config")
			cmd.Println(system.Config.PrintConfig())
		},
	}
}

func createServerCommand(system *core.System) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Starts the ULP BFF server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startServer(cmd.Context(), system)
		},
	}
}

func startServer(ctx context.Context, system *core.System) error {
	logrus.Info("Starting server")

	if err := system.Configure(); err != nil {
		return err
	}
	if err := system.Start(); err != nil {
		return err
	}
	defer func() {
		if err := system.Shutdown(); err != nil {
			logrus.Error(err)
		}
	}()

	echoServer, err := core.CreateEchoServer(*system.Config, system.Routers)
	if err != nil {
		return err
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- echoServer.Start(system.Config.HTTP.Address)
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		logrus.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return echoServer.Shutdown(shutdownCtx)
	}
}

// CreateCommand creates the command with all subcommands to run the system.
func CreateCommand(system *core.System) *cobra.Command {
	command := createRootCommand()
	command.SetOut(stdOutWriter)
	command.AddCommand(createServerCommand(system))
	command.AddCommand(createPrintConfigCommand(system))
	command.PersistentFlags().AddFlagSet(core.FlagSet())
	return command
}

// CreateSystem creates the system with all engines registered and the API routed.
func CreateSystem() *core.System {
	system := core.NewSystem()

	idpInstance := idp.New()
	didInstance := didsvc.New()
	registryInstance := registry.New()
	credentialInstance := credential.New()
	walletInstance := wallet.New()
	pdfInstance := pdf.New()
	ssoInstance := sso.NewService(idpInstance, didInstance, registryInstance, credentialInstance, walletInstance, pdfInstance)

	system.RegisterEngine(core.NewStatusEngine(system))
	system.RegisterEngine(core.NewMetricsEngine())
	system.RegisterEngine(idpInstance)
	system.RegisterEngine(didInstance)
	system.RegisterEngine(registryInstance)
	system.RegisterEngine(credentialInstance)
	system.RegisterEngine(walletInstance)
	system.RegisterEngine(pdfInstance)
	system.RegisterEngine(ssoInstance)

	// Routable engines serve their own endpoints; the SSO workflows are routed through the API wrapper.
	system.VisitEngines(func(engine core.Engine) {
		if router, ok := engine.(core.Routable); ok {
			system.RegisterRoutes(router)
		}
	})
	system.RegisterRoutes(&apiV1.Wrapper{SSO: ssoInstance})

	return system
}

// Execute loads the config into the system and executes the root command.
func Execute(ctx context.Context, system *core.System) error {
	command := CreateCommand(system)
	command.SetOut(stdOutWriter)

	if err := system.Load(command.PersistentFlags()); err != nil {
		return err
	}

	return command.ExecuteContext(ctx)
}
