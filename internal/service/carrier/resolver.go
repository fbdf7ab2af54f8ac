package carrier

import (
	"errors"
	"fmt"
	"strings"

	"gitee.com/flycash/publish-gateway/internal/domain"
	"gitee.com/flycash/publish-gateway/internal/errs"
	"github.com/nyaruka/phonenumbers"
)

const carrierLang = "en"

//go:generate mockgen -source=./resolver.go -destination=./mocks/resolver.mock.go -package=carriermocks
type Resolver interface {
	// Resolve 解析号码所属的国家和运营商
	Resolve(phoneNumber string) (domain.Destination, error)
}

var _ Resolver = (*PhoneNumberResolver)(nil)

// PhoneNumberResolver 基于 libphonenumber 号段数据的实现，无状态，可并发使用
type PhoneNumberResolver struct {
	table *Table
}

func NewPhoneNumberResolver(table *Table) *PhoneNumberResolver {
	return &PhoneNumberResolver{table: table}
}

func (r *PhoneNumberResolver) Resolve(phoneNumber string) (domain.Destination, error) {
	raw := strings.TrimSpace(phoneNumber)
	num, err := phonenumbers.Parse(raw, "")
	if err != nil {
		if errors.Is(err, phonenumbers.ErrInvalidCountryCode) {
			if strings.HasPrefix(raw, "+") || strings.HasPrefix(raw, "0") {
				return domain.Destination{}, fmt.Errorf("%w: %s", errs.ErrInvalidCountryCode, raw)
			}
			return domain.Destination{}, fmt.Errorf("%w: %s", errs.ErrMissingCountryCode, raw)
		}
		return domain.Destination{}, fmt.Errorf("%w: %s: %s", errs.ErrInvalidPhoneNumber, raw, err.Error())
	}
	if !phonenumbers.IsValidNumber(num) {
		return domain.Destination{}, fmt.Errorf("%w: %s is not a valid number for its country", errs.ErrInvalidPhoneNumber, raw)
	}

	region := phonenumbers.GetRegionCodeForNumber(num)
	carrierName, err := phonenumbers.GetCarrierForNumber(num, carrierLang)
	if err != nil {
		// 号段数据缺失不影响路由，按未知运营商处理
		carrierName = ""
	}
	return domain.Destination{
		Country:  r.table.CountryName(region),
		Operator: r.table.CanonicalOperator(region, carrierName),
	}, nil
}

// RoutingIdentifier 解析号码并拼出路由标识
func RoutingIdentifier(r Resolver, projectReference, phoneNumber string) (string, error) {
	dest, err := r.Resolve(phoneNumber)
	if err != nil {
		return "", err
	}
	return domain.RoutingIdentifier(projectReference, dest), nil
}
