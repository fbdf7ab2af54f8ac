//go:build unit

package batch

import (
	"strings"
	"testing"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV_RoundTrip(t *testing.T) {
	t.Parallel()
	items, err := ParseCSV(strings.NewReader("to,body,sid\n+14155550123,hello,MYSID1\n"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Valid())
	assert.Equal(t, domain.SendRequest{
		Recipient:        "+14155550123",
		Body:             "hello",
		ClientSuppliedID: "MYSID1",
	}, items[0].Request)
}

func TestParseCSV(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		wantErr error
		assert  func(t *testing.T, items []Item)
	}{
		{
			name:  "列顺序和大小写无关",
			input: "\ufeffBody,SID,To\nhi,S1,+14155550123\n",
			assert: func(t *testing.T, items []Item) {
				require.Len(t, items, 1)
				assert.Equal(t, "+14155550123", items[0].Request.Recipient)
				assert.Equal(t, "hi", items[0].Request.Body)
				assert.Equal(t, "S1", items[0].Request.ClientSuppliedID)
			},
		},
		{
			name:  "缺字段带行号",
			input: "to,body\n+14155550123,hi\n+14155550124,\n,\n",
			assert: func(t *testing.T, items []Item) {
				require.Len(t, items, 3)
				assert.True(t, items[0].Valid())
				assert.Equal(t, []string{`line 3: missing field "body"`}, items[1].Errors())
				assert.Equal(t, []string{`line 4: missing field "to"`, `line 4: missing field "body"`}, items[2].Errors())
			},
		},
		{
			name:  "短行",
			input: "to,body,sid\n+14155550123\n",
			assert: func(t *testing.T, items []Item) {
				require.Len(t, items, 1)
				assert.Equal(t, []string{`line 2: missing field "body"`}, items[0].Errors())
			},
		},
		{
			name:  "号码过长带行号",
			input: "to,body\n+14155550123,hi\n+1" + strings.Repeat("4", 99) + ",hi\n",
			assert: func(t *testing.T, items []Item) {
				require.Len(t, items, 2)
				assert.True(t, items[0].Valid())
				assert.Equal(t, []string{`line 3: field "to" longer than 64`}, items[1].Errors())
			},
		},
		{
			name:    "缺少表头",
			input:   "phone,text\n+14155550123,hi\n",
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name:    "空文件",
			input:   "",
			wantErr: errs.ErrInvalidParameter,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			items, err := ParseCSV(strings.NewReader(tc.input))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.assert(t, items)
		})
	}
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		wantErr error
		assert  func(t *testing.T, items []Item)
	}{
		{
			name:  "单个对象",
			input: `{"to":"+14155550123","body":"hello","sid":"A"}`,
			assert: func(t *testing.T, items []Item) {
				require.Len(t, items, 1)
				assert.Equal(t, "A", items[0].Request.ClientSuppliedID)
			},
		},
		{
			name:  "数组保持顺序",
			input: `[{"to":"+1","body":"a","sid":"A"},{"to":"+2"},{"to":"+3","body":"c","sid":"C"},42]`,
			assert: func(t *testing.T, items []Item) {
				require.Len(t, items, 4)
				assert.Equal(t, "A", items[0].Request.ClientSuppliedID)
				assert.Equal(t, []string{`item 2: missing field "body"`}, items[1].Errors())
				assert.Equal(t, "C", items[2].Request.ClientSuppliedID)
				assert.False(t, items[3].Valid())
			},
		},
		{
			name:  "sid 过长",
			input: `[{"to":"+1","body":"a","sid":"` + strings.Repeat("s", 65) + `"},{"to":"+2","body":"b","sid":"` + strings.Repeat("s", 64) + `"}]`,
			assert: func(t *testing.T, items []Item) {
				require.Len(t, items, 2)
				assert.Equal(t, []string{`item 1: field "sid" longer than 64`}, items[0].Errors())
				assert.True(t, items[1].Valid())
			},
		},
		{
			name:  "号码过长",
			input: `[{"to":"+1` + strings.Repeat("4", 99) + `","body":"a"},{"to":"+14155550123","body":"b"}]`,
			assert: func(t *testing.T, items []Item) {
				require.Len(t, items, 2)
				assert.Equal(t, []string{`item 1: field "to" longer than 64`}, items[0].Errors())
				assert.True(t, items[1].Valid())
			},
		},
		{
			name:    "不是 JSON",
			input:   `to,body`,
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name:    "数组格式错误",
			input:   `[{"to":"+1"`,
			wantErr: errs.ErrInvalidParameter,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			items, err := ParseJSON([]byte(tc.input))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.assert(t, items)
		})
	}
}

func TestParse_ContentType(t *testing.T) {
	t.Parallel()
	items, err := Parse("text/csv; charset=utf-8", []byte("to,body\n+1,hi\n"))
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = Parse("application/json", []byte(`[{"to":"+1","body":"hi"}]`))
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = Parse("application/xml", []byte(`<a/>`))
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
}
