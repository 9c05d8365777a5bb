package swagger_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/student-finance/internal/transport/swagger"
)

const documentPath = "../../../api/openapi.yml"

var _ = Describe("Swagger", func() {
	It("should load and validate the API document", func() {
		doc, err := swagger.Load(context.Background(), documentPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Paths.Find("/expenses")).NotTo(BeNil())
		Expect(doc.Paths.Find("/payments/send")).NotTo(BeNil())
	})

	It("should fail for a missing document", func() {
		_, err := swagger.Load(context.Background(), "does-not-exist.yml")
		Expect(err).To(HaveOccurred())
	})

	It("should serve the document as JSON", func() {
		doc, err := swagger.Load(context.Background(), documentPath)
		Expect(err).NotTo(HaveOccurred())

		rec := httptest.NewRecorder()
		swagger.SpecHandler(doc)(rec, httptest.NewRequest(http.MethodGet, swagger.SpecRoute, nil))
		Expect(rec.Code).To(Equal(http.StatusOK))

		var body map[string]any
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body).To(HaveKeyWithValue("openapi", "3.0.3"))
	})
})
