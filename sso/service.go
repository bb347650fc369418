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

package sso

import (
	"github.com/google/uuid"

	"github.com/rushi-tekdi/ulp-bff/sso/log"
)

// ModuleName is the name of this engine.
const ModuleName = "SSO"

// Config holds the configuration for the SSO engine.
type Config struct {
	// StudentPassword is the fixed initial IdP password for directly registered students.
	StudentPassword string `koanf:"studentpassword"`
}

// DefaultConfig returns the default configuration for the SSO engine.
func DefaultConfig() Config {
	return Config{
		StudentPassword: "1234",
	}
}

// Service orchestrates the registration, login, wallet-link and credential workflows
// across the IdP, DID service, Registry and Wallet.
type Service struct {
	config     Config
	tokens     TokenBroker
	dids       DidIssuer
	registry   Registry
	credential CredentialService
	wallet     WalletLinker
	pdf        PDFConverter
}

// NewService creates the orchestrator with its dependencies.
func NewService(tokens TokenBroker, dids DidIssuer, reg Registry, credentials CredentialService, walletLinker WalletLinker, pdfConverter PDFConverter) *Service {
	return &Service{
		config:     DefaultConfig(),
		tokens:     tokens,
		dids:       dids,
		registry:   reg,
		credential: credentials,
		wallet:     walletLinker,
		pdf:        pdfConverter,
	}
}

func (s *Service) Name() string {
	return ModuleName
}

func (s *Service) ConfigKey() string {
	return "sso"
}

func (s *Service) Config() interface{} {
	return &s.config
}

// done records the terminal outcome of a workflow instance before returning it.
func (s *Service) done(workflow string, workflowID string, outcome Outcome) Outcome {
	workflowOutcomes.WithLabelValues(workflow, outcome.Status).Inc()
	log.Logger().
		WithField("workflow", workflow).
		WithField("workflow_id", workflowID).
		WithField("status", outcome.Status).
		WithField("code", outcome.Code).
		Info("Workflow finished")
	return outcome
}

func newWorkflowID() string {
	return uuid.NewString()
}
