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

import "net/http"

// Status tags are the machine-readable contract callers branch on.
// The vocabulary is fixed; changing a tag is a breaking API change.
const (
	StatusInvalidRequest = "invalid_request"

	StatusRegistered                = "registered"
	StatusClientTokenError          = "keycloak_client_token_error"
	StatusKeycloakRegisterDuplicate = "keycloak_register_duplicate"
	StatusDidGenerateError          = "did_generate_error"
	StatusDidGenerateErrorTeacher   = "did_generate_error_teacher"
	StatusDidGenerateErrorSchool    = "did_generate_error_school"
	StatusRegisterError             = "sb_rc_register_error"
	StatusRegisterDuplicate         = "sb_rc_register_duplicate"
	StatusUpdateError               = "sb_rc_update_error"

	StatusInvalidCredentials = "keycloak_invalid_credentials"
	StatusLoginSuccess       = "login_success"
	StatusSearchError        = "sb_rc_search_error"
	StatusNoFound            = "sb_rc_no_found"
	StatusSearchNoFound      = "sb_rc_search_no_found"
	StatusSearchFound        = "sb_rc_search_found"

	StatusDidSuccess = "did_success"
	StatusNoDidFound = "sb_rc_no_did_found"

	StatusStudentTokenBadRequest = "keycloak_student_token_bad_request"
	StatusStudentTokenError      = "keycloak_student_token_error"
	StatusUserTokenBadRequest    = "keycloak_user_token_bad_request"
	StatusUserTokenError         = "keycloak_user_token_error"

	StatusCredSearchError   = "cred_search_error"
	StatusCredSearchNoFound = "cred_search_no_found"
	StatusCredSuccess       = "cred_success"

	StatusRenderFailed                = "render_api_failed"
	StatusRenderSuccess               = "render_api_success"
	StatusRenderTemplateFailed        = "render_template_api_failed"
	StatusRenderTemplateSuccess       = "render_template_api_success"
	StatusRenderTemplateSchemaFailed  = "render_template_schema_api_failed"
	StatusRenderTemplateSchemaSuccess = "render_template_schema_api_success"
	StatusCredSearchAPIFailed         = "cred_search_api_failed"
	StatusCredSearchAPISuccess        = "cred_search_api_success"
	StatusCredSchemaAPIFailed         = "cred_schema_api_failed"
	StatusCredSchemaAPISuccess        = "cred_schema_api_success"
	StatusCredSchemaJSONAPIFailed     = "cred_schema_json_api_failed"
	StatusCredSchemaJSONAPISuccess    = "cred_schema_json_api_success"

	StatusDigilockerTokenBadRequest = "digilocker_token_bad_request"
	StatusDigilockerLoginSuccess    = "digilocker_login_success"
)

// User discriminators on the wallet login outcome.
const (
	UserFound   = "FOUND"
	UserNoFound = "NO_FOUND"
)

// Outcome is the typed result of a workflow: an HTTP status code, a stable machine-readable
// status tag, a human message and a result payload. The wallet login flow additionally
// carries the raw token response, a FOUND/NO_FOUND discriminator, the matched registry
// record(s) and a user token.
type Outcome struct {
	Code    int
	Success bool
	Status  string
	Message string
	Result  interface{}

	Digi     interface{}
	User     string
	UserData interface{}
	Token    string
}

func failure(code int, status string, message string, result interface{}) Outcome {
	return Outcome{Code: code, Status: status, Message: message, Result: result}
}

func success(code int, status string, message string, result interface{}) Outcome {
	return Outcome{Code: code, Success: true, Status: status, Message: message, Result: result}
}

// InvalidRequest is the outcome for a request missing required input.
func InvalidRequest(message string) Outcome {
	return failure(http.StatusBadRequest, StatusInvalidRequest, message, nil)
}
