package carrier

import (
	_ "embed"
	"fmt"
	"strings"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/errs"
	"gopkg.in/yaml.v2"
)

//go:embed data/mccmnc.yaml
var defaultTableData []byte

const UnknownOperator = "Unknown"

type network struct {
	MCC      string `yaml:"mcc"`
	MNC      string `yaml:"mnc"`
	ISO      string `yaml:"iso"`
	Country  string `yaml:"country"`
	Dial     string `yaml:"dial"`
	Operator string `yaml:"operator"`
}

// Table 国家、运营商名称的唯一来源。号码解析和 MCC/MNC 反查共用这一份数据
type Table struct {
	byCode      map[string]network
	countries   map[string]string   // iso -> 国家名
	operators   map[string][]string // iso -> 运营商名
	codeByNames map[domain.Destination]string
}

func NewTable(data []byte) (*Table, error) {
	var raw struct {
		Networks []network `yaml:"networks"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("解析 mcc/mnc 数据失败 %w", err)
	}
	t := &Table{
		byCode:      make(map[string]network, len(raw.Networks)),
		countries:   make(map[string]string),
		operators:   make(map[string][]string),
		codeByNames: make(map[domain.Destination]string, len(raw.Networks)),
	}
	for _, n := range raw.Networks {
		if n.MCC == "" || n.MNC == "" || n.ISO == "" {
			return nil, fmt.Errorf("%w: mcc/mnc 数据不完整 %+v", errs.ErrInvalidParameter, n)
		}
		n.ISO = strings.ToUpper(n.ISO)
		n.Country = Normalize(n.Country)
		n.Operator = Normalize(n.Operator)
		code := n.MCC + n.MNC
		t.byCode[code] = n
		t.countries[n.ISO] = n.Country
		t.operators[n.ISO] = append(t.operators[n.ISO], n.Operator)
		dest := domain.Destination{Country: n.Country, Operator: n.Operator}
		if _, ok := t.codeByNames[dest]; !ok {
			t.codeByNames[dest] = code
		}
	}
	return t, nil
}

// DefaultTable 使用内置数据
func DefaultTable() *Table {
	t, err := NewTable(defaultTableData)
	if err != nil {
		panic(err)
	}
	return t
}

// LookupCode 根据 MCC+MNC 组合码查找国家和运营商，例如 62401
func (t *Table) LookupCode(code string) (domain.Destination, error) {
	n, ok := t.byCode[strings.TrimSpace(code)]
	if !ok {
		return domain.Destination{}, fmt.Errorf("%w: %q", errs.ErrUnknownMCCMNC, code)
	}
	return domain.Destination{Country: n.Country, Operator: n.Operator}, nil
}

// OperatorCode 反查 MCC+MNC 组合码
func (t *Table) OperatorCode(dest domain.Destination) (string, bool) {
	code, ok := t.codeByNames[dest]
	return code, ok
}

// CountryName 没有收录的地区直接使用 ISO 代码，保证结果稳定
func (t *Table) CountryName(iso string) string {
	iso = strings.ToUpper(iso)
	if name, ok := t.countries[iso]; ok {
		return name
	}
	return Normalize(iso)
}

// CanonicalOperator 把号段数据中的运营商名称对齐到表里的名称
func (t *Table) CanonicalOperator(iso, carrierName string) string {
	name := Normalize(carrierName)
	if name == "" {
		return UnknownOperator
	}
	lower := strings.ToLower(name)
	for _, op := range t.operators[strings.ToUpper(iso)] {
		opLower := strings.ToLower(op)
		if opLower == lower || strings.HasPrefix(lower, opLower+" ") {
			return op
		}
	}
	return name
}

var nameReplacer = strings.NewReplacer("_", "-", ".", "-", "/", "-", "#", "-", "*", "-")

// Normalize 去掉首尾空白、合并连续空白，并替换会干扰 topic 路由的字符
func Normalize(name string) string {
	return nameReplacer.Replace(strings.Join(strings.Fields(name), " "))
}
