// Package openapi loads OpenAPI 3 documents and maps component schemas onto
// renderable forms.
package openapi
