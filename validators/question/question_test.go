package questionValidator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp() *fiber.App {
	app := fiber.New()
	app.Post("/question/create", CreateQuestion(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Put("/question/update", UpdateQuestion(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func post(t *testing.T, app *fiber.App, method, path, body string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCreateQuestionValid(t *testing.T) {
	app := testApp()

	status := post(t, app, "POST", "/question/create",
		`{"companyId":1,"text":"Uses a CRM?","type":"BOOLEAN","weight":10}`)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestCreateQuestionRejectsNonPositiveWeight(t *testing.T) {
	app := testApp()

	cases := []string{
		`{"companyId":1,"text":"Q","type":"BOOLEAN","weight":0}`,
		`{"companyId":1,"text":"Q","type":"BOOLEAN","weight":-5}`,
	}
	for _, body := range cases {
		status := post(t, app, "POST", "/question/create", body)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	}
}

func TestCreateQuestionRejectsUnknownType(t *testing.T) {
	app := testApp()

	status := post(t, app, "POST", "/question/create",
		`{"companyId":1,"text":"Q","type":"RATING","weight":5}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestCreateQuestionRequiresText(t *testing.T) {
	app := testApp()

	status := post(t, app, "POST", "/question/create",
		`{"companyId":1,"text":"  ","type":"BOOLEAN","weight":5}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestCreateQuestionMultipleChoiceNeedsOptions(t *testing.T) {
	app := testApp()

	status := post(t, app, "POST", "/question/create",
		`{"companyId":1,"text":"Segment?","type":"MULTIPLE_CHOICE","weight":5,"options":["Enterprise"]}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	status = post(t, app, "POST", "/question/create",
		`{"companyId":1,"text":"Segment?","type":"MULTIPLE_CHOICE","weight":5,"options":["Enterprise","SMB"]}`)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestCreateQuestionRejectsOptionsForNonChoiceTypes(t *testing.T) {
	app := testApp()

	status := post(t, app, "POST", "/question/create",
		`{"companyId":1,"text":"Q","type":"BOOLEAN","weight":5,"options":["Yes","No"]}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestUpdateQuestionRequiresID(t *testing.T) {
	app := testApp()

	status := post(t, app, "PUT", "/question/update", `{"weight":5}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}
