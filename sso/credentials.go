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
	"net/http"

	"github.com/rushi-tekdi/ulp-bff/idp"
)

// introspect resolves the bearer token and returns either the userinfo or a terminal outcome.
// The bad-request and expired tags differ per calling workflow, so they are passed in.
func (s *Service) introspect(ctx context.Context, bearerToken string, badRequestTag string, expiredTag string) (*idp.UserInfo, *Outcome) {
	info, err := s.tokens.Introspect(ctx, bearerToken)
	if err != nil {
		outcome := failure(http.StatusUnauthorized, badRequestTag, "Unauthorized", nil)
		return nil, &outcome
	}
	if info.PreferredUsername == "" {
		// A valid call without preferred_username means the session expired.
		outcome := failure(http.StatusUnauthorized, expiredTag, "Keycloak Token Expired", info.Raw)
		return nil, &outcome
	}
	return info, nil
}

// Credentials looks up the credentials of the authenticated student: bearer token →
// Registry record (exactly one) → credential search by the record's DID.
func (s *Service) Credentials(ctx context.Context, bearerToken string) Outcome {
	workflowID := newWorkflowID()

	info, terminal := s.introspect(ctx, bearerToken, StatusStudentTokenBadRequest, StatusStudentTokenError)
	if terminal != nil {
		return s.done("credentials", workflowID, *terminal)
	}

	record, err := s.findStudent(ctx, info.PreferredUsername)
	if err != nil {
		return s.done("credentials", workflowID, failure(http.StatusNotImplemented, StatusSearchError,
			"Sunbird RC Student Search Failed", err.Error()))
	}
	if record == nil {
		return s.done("credentials", workflowID, failure(http.StatusNotFound, StatusNoDidFound,
			"Student DID not Found in Sunbird RC", nil))
	}

	credentials, err := s.credential.SearchList(ctx, record.Did())
	if err != nil {
		return s.done("credentials", workflowID, failure(http.StatusNotImplemented, StatusCredSearchError,
			"Student Credentials Search Failed", err.Error()))
	}
	if len(credentials) == 0 {
		return s.done("credentials", workflowID, failure(http.StatusNotFound, StatusCredSearchNoFound,
			"Student Credentials Not Found", nil))
	}
	return s.done("credentials", workflowID, success(http.StatusOK, StatusCredSuccess,
		"Student Credentials Found", credentials))
}

// RenderCredentialsHTML renders a credential document for the authenticated student.
func (s *Service) RenderCredentialsHTML(ctx context.Context, bearerToken string, renderPayload map[string]interface{}) Outcome {
	workflowID := newWorkflowID()

	_, terminal := s.introspect(ctx, bearerToken, StatusStudentTokenBadRequest, StatusStudentTokenError)
	if terminal != nil {
		return s.done("render_html", workflowID, *terminal)
	}

	html, err := s.credential.Render(ctx, renderPayload)
	if err != nil {
		return s.done("render_html", workflowID, failure(http.StatusBadRequest, StatusRenderFailed,
			"Cred Render API Failed", nil))
	}
	return s.done("render_html", workflowID, success(http.StatusOK, StatusRenderSuccess,
		"Cred Render API Success", string(html)))
}

// RenderCredentialsPDF renders a credential document and converts it to PDF.
// The Result of a successful outcome is the raw PDF ([]byte).
func (s *Service) RenderCredentialsPDF(ctx context.Context, bearerToken string, renderPayload map[string]interface{}) Outcome {
	workflowID := newWorkflowID()

	_, terminal := s.introspect(ctx, bearerToken, StatusStudentTokenBadRequest, StatusStudentTokenError)
	if terminal != nil {
		return s.done("render_pdf", workflowID, *terminal)
	}

	html, err := s.credential.Render(ctx, renderPayload)
	if err != nil {
		return s.done("render_pdf", workflowID, failure(http.StatusBadRequest, StatusRenderFailed,
			"Cred Render API Failed", nil))
	}
	pdf, err := s.pdf.Convert(ctx, html)
	if err != nil {
		return s.done("render_pdf", workflowID, failure(http.StatusBadRequest, StatusRenderFailed,
			"HTML to PDF Convert Failed", nil))
	}
	return s.done("render_pdf", workflowID, success(http.StatusOK, StatusRenderSuccess,
		"Cred Render API Success", pdf))
}

// CredentialsSearch is the authenticated passthrough to the credential search endpoint.
func (s *Service) CredentialsSearch(ctx context.Context, bearerToken string, subjectID string) Outcome {
	workflowID := newWorkflowID()

	_, terminal := s.introspect(ctx, bearerToken, StatusStudentTokenBadRequest, StatusStudentTokenError)
	if terminal != nil {
		return s.done("credentials_search", workflowID, *terminal)
	}

	result, err := s.credential.Search(ctx, subjectID)
	if err != nil {
		return s.done("credentials_search", workflowID, failure(http.StatusBadRequest, StatusCredSearchAPIFailed,
			"Cred Search API Failed", err.Error()))
	}
	return s.done("credentials_search", workflowID, success(http.StatusOK, StatusCredSearchAPISuccess,
		"Cred Search API Success", json.RawMessage(result)))
}

// CredentialsSchema resolves a credential schema by id.
func (s *Service) CredentialsSchema(ctx context.Context, id string) Outcome {
	workflowID := newWorkflowID()

	result, err := s.credential.Schema(ctx, id)
	if err != nil {
		return s.done("credentials_schema", workflowID, failure(http.StatusBadRequest, StatusCredSchemaAPIFailed,
			"Cred Schema API Failed", err.Error()))
	}
	return s.done("credentials_schema", workflowID, success(http.StatusOK, StatusCredSchemaAPISuccess,
		"Cred Schema API Success", json.RawMessage(result)))
}

// CredentialsSchemaJSON resolves the JSON-LD schema by id.
func (s *Service) CredentialsSchemaJSON(ctx context.Context, id string) Outcome {
	workflowID := newWorkflowID()

	result, err := s.credential.SchemaJSON(ctx, id)
	if err != nil {
		return s.done("credentials_schema_json", workflowID, failure(http.StatusBadRequest, StatusCredSchemaJSONAPIFailed,
			"Cred Schema JSON API Failed", err.Error()))
	}
	return s.done("credentials_schema_json", workflowID, success(http.StatusOK, StatusCredSchemaJSONAPISuccess,
		"Cred Schema JSON API Success", json.RawMessage(result)))
}

// RenderTemplate resolves a rendering template by id.
func (s *Service) RenderTemplate(ctx context.Context, id string) Outcome {
	workflowID := newWorkflowID()

	result, err := s.credential.RenderTemplate(ctx, id)
	if err != nil {
		return s.done("render_template", workflowID, failure(http.StatusBadRequest, StatusRenderTemplateFailed,
			"Render Template API Failed", nil))
	}
	return s.done("render_template", workflowID, success(http.StatusOK, StatusRenderTemplateSuccess,
		"Render Template API Success", json.RawMessage(result)))
}

// RenderTemplateSchema resolves the rendering template schema by id.
func (s *Service) RenderTemplateSchema(ctx context.Context, id string) Outcome {
	workflowID := newWorkflowID()

	result, err := s.credential.RenderTemplateSchema(ctx, id)
	if err != nil {
		return s.done("render_template_schema", workflowID, failure(http.StatusBadRequest, StatusRenderTemplateSchemaFailed,
			"Render Template Schema API Failed", nil))
	}
	return s.done("render_template_schema", workflowID, success(http.StatusOK, StatusRenderTemplateSchemaSuccess,
		"Render Template Schema API Success", json.RawMessage(result)))
}
