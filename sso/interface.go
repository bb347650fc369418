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
	"context"
	"encoding/json"

	"github.com/rushi-tekdi/ulp-bff/idp"
	"github.com/rushi-tekdi/ulp-bff/registry"
	"github.com/rushi-tekdi/ulp-bff/wallet"
)

//go:generate mockgen -destination=mock.go -package=sso -source=interface.go

// TokenBroker obtains and validates IdP tokens.
type TokenBroker interface {
	ClientToken(ctx context.Context) (*idp.TokenSet, error)
	UserToken(ctx context.Context, username string, password string) (*idp.TokenSet, error)
	Introspect(ctx context.Context, bearerToken string) (*idp.UserInfo, error)
	CreateUser(ctx context.Context, serviceToken string, username string, password string) error
}

// DidIssuer requests a decentralized identifier for a new subject.
type DidIssuer interface {
	Generate(ctx context.Context, subjectKey string) (string, error)
}

// Registry reads and writes entity records in the credential registry.
type Registry interface {
	Search(ctx context.Context, entity string, filters map[string]string) ([]registry.Record, error)
	SearchRaw(ctx context.Context, entity string, payload interface{}) (json.RawMessage, error)
	FindUnique(ctx context.Context, entity string, field string, value string) (registry.Record, error)
	Invite(ctx context.Context, entity string, payload interface{}) (*registry.Acknowledgement, error)
	Update(ctx context.Context, entity string, osid string, payload interface{}) (*registry.Acknowledgement, error)
}

// CredentialService searches and renders credentials and resolves schemas and templates.
type CredentialService interface {
	Search(ctx context.Context, subjectID string) (json.RawMessage, error)
	SearchList(ctx context.Context, subjectDID string) ([]map[string]interface{}, error)
	Render(ctx context.Context, payload interface{}) ([]byte, error)
	Schema(ctx context.Context, id string) (json.RawMessage, error)
	SchemaJSON(ctx context.Context, id string) (json.RawMessage, error)
	RenderTemplate(ctx context.Context, id string) (json.RawMessage, error)
	RenderTemplateSchema(ctx context.Context, id string) (json.RawMessage, error)
}

// WalletLinker bridges the document-wallet OAuth flow and derives deterministic credentials.
type WalletLinker interface {
	AuthorizeURL(kind wallet.AccountKind) string
	ExchangeCode(ctx context.Context, kind wallet.AccountKind, code string) (*wallet.TokenResponse, *wallet.Claims, error)
	UsernameFor(kind wallet.AccountKind, claims wallet.Claims) string
	PasswordFor(username string) string
}

// PDFConverter converts rendered HTML into a PDF document.
type PDFConverter interface {
	Convert(ctx context.Context, html []byte) ([]byte, error)
}
