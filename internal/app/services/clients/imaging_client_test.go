package clients

import (
	"context"
	"io"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestImagingClient_UploadImage(t *testing.T) {
	t.Run("Forwards Multipart Body Intact", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/images/upload", r.URL.Path)

			err := r.ParseMultipartForm(1 << 20)
			require.NoError(t, err)

			file, header, err := r.FormFile(constvars.FormFieldImage)
			require.NoError(t, err)
			defer file.Close()

			content, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, "fake png bytes", string(content))
			assert.Equal(t, "scan.png", header.Filename)
			assert.Equal(t, "image/png", header.Header.Get(constvars.HeaderContentType))

			assert.Equal(t, "xray", r.FormValue(constvars.FormFieldImageType))
			assert.Equal(t, "user-1", r.FormValue(constvars.FormFieldUserID))
			assert.Equal(t, "consult-9", r.FormValue(constvars.FormFieldConsultationID))

			w.Write([]byte(`{
				"success": true,
				"message": "Image uploaded successfully",
				"data": {
					"image_id": "img-42",
					"filename": "scan.png",
					"image_type": "xray",
					"upload_url": "http://storage/img-42",
					"analysis_status": "completed"
				}
			}`))
		}))
		defer server.Close()

		client := &imagingClient{BaseUrl: server.URL, HTTPClient: server.Client(), Log: zap.NewNop()}

		result, err := client.UploadImage(context.Background(), &requests.UploadImage{
			ImageType:      "xray",
			ConsultationID: "consult-9",
			UserID:         "user-1",
			Filename:       "scan.png",
			ContentType:    "image/png",
			File:           strings.NewReader("fake png bytes"),
		})

		require.NoError(t, err)
		assert.Equal(t, "img-42", result.ImageID)
		assert.Equal(t, "completed", result.AnalysisStatus)
	})

	t.Run("Empty Consultation ID Is Omitted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := r.ParseMultipartForm(1 << 20)
			require.NoError(t, err)

			_, present := r.MultipartForm.Value[constvars.FormFieldConsultationID]
			assert.False(t, present, "uploads without a consultation should not send an empty field")

			w.Write([]byte(`{"success": true, "message": "ok", "data": {"image_id": "img-7"}}`))
		}))
		defer server.Close()

		client := &imagingClient{BaseUrl: server.URL, HTTPClient: server.Client(), Log: zap.NewNop()}

		result, err := client.UploadImage(context.Background(), &requests.UploadImage{
			ImageType:   "skin",
			UserID:      "user-2",
			Filename:    "mole.jpg",
			ContentType: "image/jpeg",
			File:        strings.NewReader("jpg"),
		})

		require.NoError(t, err)
		assert.Equal(t, "img-7", result.ImageID)
	})

	t.Run("Missing Content Type Defaults To Octet Stream", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := r.ParseMultipartForm(1 << 20)
			require.NoError(t, err)

			_, header, err := r.FormFile(constvars.FormFieldImage)
			require.NoError(t, err)
			assert.Equal(t, constvars.MIMEOctetStream, header.Header.Get(constvars.HeaderContentType))

			w.Write([]byte(`{"success": true, "message": "ok", "data": {"image_id": "img-8"}}`))
		}))
		defer server.Close()

		client := &imagingClient{BaseUrl: server.URL, HTTPClient: server.Client(), Log: zap.NewNop()}

		_, err := client.UploadImage(context.Background(), &requests.UploadImage{
			ImageType: "xray",
			UserID:    "user-3",
			Filename:  "raw.bin",
			File:      strings.NewReader("raw"),
		})

		require.NoError(t, err)
	})

	t.Run("Rejected Upload Maps To Bad Gateway", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := &imagingClient{BaseUrl: server.URL, HTTPClient: server.Client(), Log: zap.NewNop()}

		_, err := client.UploadImage(context.Background(), &requests.UploadImage{
			ImageType: "xray",
			UserID:    "user-4",
			Filename:  "scan.png",
			File:      strings.NewReader("png"),
		})

		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	})
}
