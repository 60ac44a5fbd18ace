// @title           AI Tool Hub API
// @version         1.0
// @description     Community directory of AI tools with favorites, reviews, and a blog. Authenticate with a Personal Access Token or a web session.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerToken
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and your API token. Example: "Bearer hub_xxx"
package api
