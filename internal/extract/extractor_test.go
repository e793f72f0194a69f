package extract

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rezeptplaner/internal/recipe"
)

const validPayload = `{
	"title": "Spaghetti Carbonara",
	"summary": "A Roman classic with eggs, cheese and bacon.",
	"ingredients": [
		{"name": "Spaghetti", "quantity": "500 g", "department": "Pasta, Rice & Grains", "estimated_price": 1.20},
		{"name": "Eggs", "quantity": "4 pcs", "department": "Dairy & Eggs", "estimated_price": 1.10},
		{"name": "Bacon", "quantity": "150 g", "department": "Meat & Sausage", "estimated_price": 2.50}
	],
	"preparation_text": "1. Boil water\n2. Cook pasta\n3. Serve hot",
	"prep_minutes": 10,
	"cook_minutes": 15,
	"total_minutes": 25,
	"servings": 4,
	"difficulty": "Easy"
}`

// mockBackend is a mock of the generative backend.
type mockBackend struct {
	response       string
	returnError    error
	receivedSystem string
	receivedUser   string
}

// Generate mocks the backend call.
func (m *mockBackend) Generate(ctx context.Context, system, user string) (string, error) {
	m.receivedSystem = system
	m.receivedUser = user
	if m.returnError != nil {
		return "", m.returnError
	}
	return m.response, nil
}

func TestExtractSuccess(t *testing.T) {
	backend := &mockBackend{response: validPayload}

	rec, err := New(backend).Extract(context.Background(), "Spaghetti Carbonara")
	require.NoError(t, err)

	assert.Equal(t, "Spaghetti Carbonara", rec.Title)
	assert.Len(t, rec.Ingredients, 3)
	assert.Equal(t, 25, rec.TotalMinutes)
}

func TestExtractSendsSchemaAndDish(t *testing.T) {
	backend := &mockBackend{response: validPayload}

	_, err := New(backend).Extract(context.Background(), "Wiener Schnitzel")
	require.NoError(t, err)

	assert.Contains(t, backend.receivedSystem, recipe.FormatInstructions())
	assert.Contains(t, backend.receivedSystem, "German market")
	assert.Contains(t, backend.receivedUser, "Wiener Schnitzel")
}

func TestExtractStripsMarkdownFences(t *testing.T) {
	backend := &mockBackend{response: "Here is your recipe:\n```json\n" + validPayload + "\n```\nEnjoy!"}

	rec, err := New(backend).Extract(context.Background(), "Spaghetti Carbonara")
	require.NoError(t, err)
	assert.Equal(t, "Spaghetti Carbonara", rec.Title)
}

func TestExtractBackendFailure(t *testing.T) {
	transportErr := fmt.Errorf("connection refused")
	backend := &mockBackend{returnError: transportErr}

	_, err := New(backend).Extract(context.Background(), "Tiramisu")
	require.Error(t, err)

	var failure *ExtractionFailure
	require.ErrorAs(t, err, &failure)
	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.ErrorIs(t, err, transportErr)
}

func TestExtractNonJSONResponse(t *testing.T) {
	backend := &mockBackend{response: "Sorry, I cannot help with that."}

	_, err := New(backend).Extract(context.Background(), "Tiramisu")
	require.Error(t, err)

	var failure *ExtractionFailure
	require.ErrorAs(t, err, &failure)
	var violation *recipe.SchemaViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "response", violation.Field)
}

func TestExtractMalformedJSON(t *testing.T) {
	backend := &mockBackend{response: `{"title": "Broken", "servings": "four"}`}

	_, err := New(backend).Extract(context.Background(), "Tiramisu")

	var violation *recipe.SchemaViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "response", violation.Field)
}

func TestExtractOffSchemaPayload(t *testing.T) {
	backend := &mockBackend{response: `{
		"title": "Tiramisu",
		"summary": "Layered Italian dessert.",
		"ingredients": [
			{"name": "Mascarpone", "quantity": "250 g", "department": "Dairy & Eggs", "estimated_price": -2.49}
		],
		"preparation_text": "1. Whip the cream",
		"prep_minutes": 30,
		"cook_minutes": 0,
		"total_minutes": 30,
		"servings": 6,
		"difficulty": "Medium"
	}`}

	_, err := New(backend).Extract(context.Background(), "Tiramisu")

	var violation *recipe.SchemaViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "ingredients[0].estimated_price", violation.Field)

	// A backend error and a schema violation are distinct failure
	// classes; callers pick messaging by errors.As.
	var backendErr *BackendError
	assert.False(t, errors.As(err, &backendErr))
}
