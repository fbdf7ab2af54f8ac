package batch

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/errs"
	"github.com/ecodeclub/ekit/slice"
	"github.com/hashicorp/go-multierror"
)

const (
	fieldTo   = "to"
	fieldBody = "body"
	fieldSid  = "sid"
)

// Item 归一化之后的一项，Err 不为空时该项不会被发送
type Item struct {
	// CSV 为文件行号，JSON 为数组下标加一
	Line    int
	Request domain.SendRequest
	Err     *multierror.Error
}

func (i Item) Valid() bool {
	return i.Err.ErrorOrNil() == nil
}

// Errors 每一项的错误文本
func (i Item) Errors() []string {
	if i.Valid() {
		return nil
	}
	return slice.Map(i.Err.Errors, func(_ int, err error) string {
		return err.Error()
	})
}

// Parse 根据 Content-Type 选择解析方式，整体格式错误才返回 error
func Parse(contentType string, body []byte) ([]Item, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}
	switch mediaType {
	case "text/csv", "application/csv":
		return ParseCSV(bytes.NewReader(body))
	case "application/json", "":
		return ParseJSON(body)
	default:
		return nil, fmt.Errorf("%w: 不支持的 Content-Type %q", errs.ErrInvalidParameter, contentType)
	}
}

type jsonItem struct {
	To   *string `json:"to"`
	Body *string `json:"body"`
	Sid  *string `json:"sid"`
}

// ParseJSON 支持单个对象或者对象数组
func ParseJSON(body []byte) ([]Item, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: 请求体为空", errs.ErrInvalidParameter)
	}
	var raws []json.RawMessage
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
		}
	case '{':
		raws = []json.RawMessage{trimmed}
	default:
		return nil, fmt.Errorf("%w: 请求体必须是 JSON 对象或数组", errs.ErrInvalidParameter)
	}

	items := make([]Item, 0, len(raws))
	for idx, raw := range raws {
		item := Item{Line: idx + 1}
		var ji jsonItem
		if err := json.Unmarshal(raw, &ji); err != nil {
			item.Err = multierror.Append(item.Err, fmt.Errorf("item %d: %w", item.Line, err))
			items = append(items, item)
			continue
		}
		items = append(items, normalize(item, map[string]*string{
			fieldTo:   ji.To,
			fieldBody: ji.Body,
			fieldSid:  ji.Sid,
		}, "item"))
	}
	return items, nil
}

// ParseCSV 表头必须包含 to 和 body，sid 可选，列顺序不限且不区分大小写
func ParseCSV(r io.Reader) ([]Item, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: CSV 为空", errs.ErrInvalidParameter)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
	}
	columns := make(map[string]int, len(header))
	for idx, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		columns[name] = idx
	}
	var missing error
	for _, required := range []string{fieldTo, fieldBody} {
		if _, ok := columns[required]; !ok {
			missing = multierror.Append(missing, fmt.Errorf("missing column %q", required))
		}
	}
	if missing != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, missing)
	}

	var items []Item
	for {
		record, err1 := reader.Read()
		if errors.Is(err1, io.EOF) {
			break
		}
		if err1 != nil {
			var parseErr *csv.ParseError
			if !errors.As(err1, &parseErr) {
				return nil, err1
			}
			items = append(items, Item{
				Line: parseErr.Line,
				Err:  multierror.Append(nil, fmt.Errorf("line %d: %w", parseErr.Line, parseErr.Err)),
			})
			continue
		}
		line, _ := reader.FieldPos(0)
		fields := make(map[string]*string, len(columns))
		for name, idx := range columns {
			if idx < len(record) {
				value := record[idx]
				fields[name] = &value
			}
		}
		items = append(items, normalize(Item{Line: line}, fields, "line"))
	}
	return items, nil
}

func normalize(item Item, fields map[string]*string, position string) Item {
	raw := func(name string) string {
		if v := fields[name]; v != nil {
			return *v
		}
		return ""
	}
	// 正文保持原样
	item.Request = domain.SendRequest{
		Recipient:        strings.TrimSpace(raw(fieldTo)),
		Body:             raw(fieldBody),
		ClientSuppliedID: strings.TrimSpace(raw(fieldSid)),
	}
	for _, required := range []string{fieldTo, fieldBody} {
		if strings.TrimSpace(raw(required)) == "" {
			item.Err = multierror.Append(item.Err,
				fmt.Errorf("%s %d: missing field %q", position, item.Line, required))
		}
	}
	if len(item.Request.Recipient) > domain.MaxRecipientLength {
		item.Err = multierror.Append(item.Err,
			fmt.Errorf("%s %d: field %q longer than %d", position, item.Line, fieldTo, domain.MaxRecipientLength))
	}
	if len(item.Request.ClientSuppliedID) > domain.MaxClientSIDLength {
		item.Err = multierror.Append(item.Err,
			fmt.Errorf("%s %d: field %q longer than %d", position, item.Line, fieldSid, domain.MaxClientSIDLength))
	}
	return item
}
