package post

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
)

// postInput is the decoded client input shared by create and edit
type postInput struct {
	Text      string
	GroupID   *int64
	ImageData []byte
	ImageName string
}

// Body limit covering the 10MiB image cap plus form overhead
const maxBodyBytes = 12 << 20

var errInvalidBody = errors.New("invalid request body")

// parsePostInput decodes the request body. Image uploads arrive as
// multipart/form-data with fields text, group_id and image; plain text posts
// may also be sent as a JSON object.
func parsePostInput(w http.ResponseWriter, r *http.Request) (postInput, error) {
	var in postInput

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return in, errInvalidBody
		}

		in.Text = r.FormValue("text")

		if raw := r.FormValue("group_id"); raw != "" {
			groupID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return in, errInvalidBody
			}
			in.GroupID = &groupID
		}

		file, header, err := r.FormFile("image")
		switch {
		case err == nil:
			defer file.Close()
			data, readErr := io.ReadAll(file)
			if readErr != nil {
				return in, errInvalidBody
			}
			in.ImageData = data
			in.ImageName = header.Filename
		case errors.Is(err, http.ErrMissingFile):
			// No image attached
		default:
			return in, errInvalidBody
		}

		return in, nil
	}

	var body struct {
		Text    string `json:"text"`
		GroupID *int64 `json:"groupId,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return in, errInvalidBody
	}
	in.Text = body.Text
	in.GroupID = body.GroupID
	return in, nil
}
