package ioc

import (
	"gitee.com/flycash/publish-gateway/internal/pkg/cryptox"
	"github.com/gotomicro/ego/core/econf"
)

// InitCrypter 账号 token 和第三方凭证的加密密钥
func InitCrypter() *cryptox.AESGCM {
	key := econf.GetString("crypto.key")
	if key == "" {
		panic("crypto.key 不能为空")
	}
	return cryptox.NewAESGCM(key)
}
