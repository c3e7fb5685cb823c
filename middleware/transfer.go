package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/member_service/constant"
	"github.com/Xushengqwer/member_service/envelope"
	"github.com/Xushengqwer/member_service/models/dto"
	"github.com/Xushengqwer/member_service/myErrors"
)

// PointTransferValidation 校验转账请求：收款人存在、不是自己、金额为正整数、余额充足。
// 通过后写入 request 与 toUser。须放在 LoginCheck 之后。
func (f *Filters) PointTransferValidation() gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := envelope.ParseJSONObject(c)
		if err != nil {
			envelope.AbortBadRequest(c)
			return
		}
		fail := func(labelKey string) {
			envelope.Render(c, envelope.FalseResult().SetMsg(f.langSvc.Get(labelKey)))
			c.Abort()
		}

		userName := strings.TrimSpace(envelope.OptString(req, "userName"))
		if userName == "" {
			userName = strings.TrimSpace(envelope.OptString(req, "toUserName"))
		}
		if userName == "" {
			fail("notFoundUserLabel")
			return
		}
		toUser, err := f.userSvc.GetUserByName(c.Request.Context(), userName)
		if err != nil {
			if !errors.Is(err, myErrors.ErrUserNotFound) {
				f.logger.Error("查询收款用户失败", zap.String("userName", userName), zap.Error(err))
			}
			fail("notFoundUserLabel")
			return
		}

		viewer := ViewerFrom(c)
		if viewer == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, envelope.FalseResult())
			return
		}
		if viewer.ID == toUser.ID {
			fail("cannotTransferSelfLabel")
			return
		}

		amount, ok := envelope.OptInt(req, "amount")
		if !ok || amount < 1 {
			fail("amountInvalidLabel")
			return
		}
		if viewer.Point < amount {
			fail("insufficientBalanceLabel")
			return
		}

		c.Set(constant.RequestKey, &dto.PointTransferRequest{UserName: toUser.Name, Amount: amount})
		c.Set(constant.ToUserKey, toUser)
		c.Next()
	}
}
