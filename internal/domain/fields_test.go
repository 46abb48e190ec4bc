package domain_test

import (
	"encoding/json"
	"testing"

	"contact-form-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRequestDecoding(t *testing.T) {
	t.Run("Should join interest lists and keep scalars", func(t *testing.T) {
		var list, solo, none domain.ContactRequest
		require.NoError(t, json.Unmarshal([]byte(`{"interests":["a","b"]}`), &list))
		require.NoError(t, json.Unmarshal([]byte(`{"interests":"solo"}`), &solo))
		require.NoError(t, json.Unmarshal([]byte(`{}`), &none))

		assert.Equal(t, "a, b", list.Interests.String())
		assert.Equal(t, "solo", solo.Interests.String())
		assert.Equal(t, "", none.Interests.String())
	})

	t.Run("Should treat false and zero interests as not given", func(t *testing.T) {
		var falsy, zero, empty domain.ContactRequest
		require.NoError(t, json.Unmarshal([]byte(`{"interests":false}`), &falsy))
		require.NoError(t, json.Unmarshal([]byte(`{"interests":0}`), &zero))
		require.NoError(t, json.Unmarshal([]byte(`{"interests":""}`), &empty))

		assert.Equal(t, "", falsy.Interests.String())
		assert.Equal(t, "", zero.Interests.String())
		assert.Equal(t, "", empty.Interests.String())
	})

	t.Run("Should keep truthy scalar interests as text", func(t *testing.T) {
		var num domain.ContactRequest
		require.NoError(t, json.Unmarshal([]byte(`{"interests":7}`), &num))
		assert.Equal(t, "7", num.Interests.String())
	})

	t.Run("Should accept required fields of any JSON type", func(t *testing.T) {
		var req domain.ContactRequest
		require.NoError(t, json.Unmarshal([]byte(`{"fullName":"Jane","phone":5551234,"service":true,"companyName":42}`), &req))

		assert.Equal(t, domain.FlexibleString("Jane"), req.FullName)
		assert.Equal(t, domain.FlexibleString("5551234"), req.Phone)
		assert.Equal(t, domain.FlexibleString("true"), req.Service)
		assert.Equal(t, domain.FlexibleString("42"), req.CompanyName)
	})

	t.Run("Should treat false and zero required fields as empty", func(t *testing.T) {
		var req domain.ContactRequest
		require.NoError(t, json.Unmarshal([]byte(`{"phone":0,"email":false}`), &req))

		assert.Empty(t, req.Phone)
		assert.Empty(t, req.Email)
	})

	t.Run("Should accept numEmployees as string or number", func(t *testing.T) {
		var str, num, zero, falsy domain.ContactRequest
		require.NoError(t, json.Unmarshal([]byte(`{"numEmployees":"10-50"}`), &str))
		require.NoError(t, json.Unmarshal([]byte(`{"numEmployees":25}`), &num))
		require.NoError(t, json.Unmarshal([]byte(`{"numEmployees":0}`), &zero))
		require.NoError(t, json.Unmarshal([]byte(`{"numEmployees":false}`), &falsy))

		assert.Equal(t, domain.FlexibleString("10-50"), str.NumEmployees)
		assert.Equal(t, domain.FlexibleString("25"), num.NumEmployees)
		assert.Equal(t, domain.FlexibleString(""), zero.NumEmployees)
		assert.Equal(t, domain.FlexibleString(""), falsy.NumEmployees)
	})

	t.Run("Should only count uploaded files given as an array", func(t *testing.T) {
		var arr, scalar domain.ContactRequest
		require.NoError(t, json.Unmarshal([]byte(`{"uploadedFiles":["http://f/1.pdf","http://f/2.pdf"]}`), &arr))
		require.NoError(t, json.Unmarshal([]byte(`{"uploadedFiles":"http://f/1.pdf"}`), &scalar))

		assert.Equal(t, domain.FileURLs{"http://f/1.pdf", "http://f/2.pdf"}, arr.UploadedFiles)
		assert.Empty(t, scalar.UploadedFiles)
	})
}

func TestInterestsRoundTrip(t *testing.T) {
	b, err := json.Marshal(domain.InterestsList("a", "b"))
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(b))

	b, err = json.Marshal(domain.InterestsScalar("solo"))
	require.NoError(t, err)
	assert.JSONEq(t, `"solo"`, string(b))

	b, err = json.Marshal(domain.Interests{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestErrorKindsUnwrap(t *testing.T) {
	cause := assert.AnError
	var transport error = &domain.TransportError{Err: cause}
	var persist error = &domain.FallbackPersistenceError{Err: cause}

	assert.ErrorIs(t, transport, cause)
	assert.ErrorIs(t, persist, cause)
	assert.Contains(t, transport.Error(), "mail transport")
	assert.Contains(t, persist.Error(), "fallback persistence")
}
