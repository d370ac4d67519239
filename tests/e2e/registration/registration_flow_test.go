//go:build e2e

package registration_test

import (
	"net/http"
	"testing"
	"time"

	"guestlink/internal/domain/link"
	resdto "guestlink/internal/handler/dto/response"
	"guestlink/internal/pkg/cookie"
	"guestlink/tests/common/builder"
	"guestlink/tests/common/dbtest"
	"guestlink/tests/common/httptest"
	"guestlink/tests/e2e"
	"guestlink/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	flowURL       = "/api/registration-flow"
	nextURL       = flowURL + "/next"
	backURL       = flowURL + "/back"
	guestURL      = flowURL + "/guest"
	companionsURL = flowURL + "/companions"
)

func startURL(token string) string {
	return "/api/registration-links/" + token + "/flows"
}

type registrationFlowSuite struct {
	e2e.SharedSuite
	links *helper.LinkTestHelper
}

func TestRegistrationFlowSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(registrationFlowSuite))
}

func (s *registrationFlowSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.links = helper.NewLinkTestHelper(s.Config.JWT, s.Clock)
}

// start opens a flow and returns its cookie.
func (s *registrationFlowSuite) start(token string) *http.Cookie {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, startURL(token), nil, "")

	var body resdto.FlowResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	c := httptest.ExtractCookie(rec, cookie.FlowCookieName)
	s.Require().NotNil(c)
	s.Equal(body.ID.String(), c.Value)
	return c
}

func (s *registrationFlowSuite) do(c *http.Cookie, method, url string, body any) resdto.FlowResponse {
	rec := httptest.PerformRequestWithCookies(s.T(), s.Router, method, url, body, []*http.Cookie{c}, "")

	var resp resdto.FlowResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	return resp
}

func (s *registrationFlowSuite) TestCompleteRegistration() {
	s.Run("正常系: 最終ステップ到達で1回だけ登録される", func() {
		issued := s.links.IssueLink(s.T(), s.DB, builder.NewLinkBuilder())
		c := s.start(issued.Token)

		s.do(c, http.MethodPut, guestURL, builder.NewGuestBuilder().BuildRequestDTO())
		s.do(c, http.MethodPut, companionsURL, map[string]any{
			"acompanantes": []any{builder.NewGuestBuilder().WithNames("Carlos").BuildRequestDTO()},
		})

		s.Equal("personal_info", s.do(c, http.MethodPost, nextURL, nil).CurrentStep)
		s.Equal("companions", s.do(c, http.MethodPost, nextURL, nil).CurrentStep)
		last := s.do(c, http.MethodPost, nextURL, nil)

		s.Equal("success", last.CurrentStep)
		s.True(last.IsLast)
		s.Require().NotNil(last.Submission)
		s.True(last.Submission.Succeeded)
		s.Nil(last.Submission.SubmitError)

		// 戻って再度最終ステップへ進んでも再送信しない
		s.do(c, http.MethodPost, backURL, nil)
		again := s.do(c, http.MethodPost, nextURL, nil)
		s.True(again.Submission.Succeeded)

		s.True(dbtest.IsLinkCompleted(s.T(), s.DB, issued.ID))
		s.Equal(1, dbtest.CountRegistrations(s.T(), s.DB, issued.ID))
		s.Equal(2, dbtest.CountRegistrationGuests(s.T(), s.DB, issued.ID))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, startURL(issued.Token), nil, "")
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, link.MsgAlreadyCompleted)
		s.Equal(link.ReasonCompleted.String(), body.Detail["reason"])
	})

	s.Run("異常系: 必須項目不足なら送信せずエラー表示", func() {
		issued := s.links.IssueLink(s.T(), s.DB, builder.NewLinkBuilder())
		c := s.start(issued.Token)

		s.do(c, http.MethodPut, guestURL, builder.NewGuestBuilder().WithNames("").BuildRequestDTO())
		s.do(c, http.MethodPost, nextURL, nil)
		s.do(c, http.MethodPost, nextURL, nil)
		last := s.do(c, http.MethodPost, nextURL, nil)

		s.Require().NotNil(last.Submission)
		s.Require().NotNil(last.Submission.SubmitError)
		s.Contains(*last.Submission.SubmitError, "nombres")
		s.False(last.Submission.Succeeded)

		s.False(dbtest.IsLinkCompleted(s.T(), s.DB, issued.ID))
		s.Equal(0, dbtest.CountRegistrations(s.T(), s.DB, issued.ID))
	})

	s.Run("異常系: フロー中にリンクが期限切れになった場合", func() {
		issued := s.links.IssueLink(s.T(), s.DB, builder.NewLinkBuilder().ExpiringAt(builder.LinkNow.Add(30*time.Minute)))
		c := s.start(issued.Token)
		s.do(c, http.MethodPut, guestURL, builder.NewGuestBuilder().BuildRequestDTO())

		// フローのTTL内でリンクだけ期限切れにする
		s.Clock.Add(45 * time.Minute)

		s.do(c, http.MethodPost, nextURL, nil)
		s.do(c, http.MethodPost, nextURL, nil)
		last := s.do(c, http.MethodPost, nextURL, nil)

		s.Require().NotNil(last.Submission.SubmitError)
		s.Equal(link.MsgLinkExpired, *last.Submission.SubmitError)
		s.Equal(0, dbtest.CountRegistrations(s.T(), s.DB, issued.ID))
	})
}

func (s *registrationFlowSuite) TestStartIneligible() {
	tests := []struct {
		name   string
		link   *builder.LinkBuilder
		role   link.Role
		status int
		reason link.Reason
	}{
		{name: "期限切れリンク", link: builder.NewLinkBuilder().AsExpired(), role: link.RoleRegistration, status: http.StatusGone, reason: link.ReasonExpired},
		{name: "完了済みリンク", link: builder.NewLinkBuilder().AsCompleted(), role: link.RoleRegistration, status: http.StatusConflict, reason: link.ReasonCompleted},
		{name: "部屋番号なし", link: builder.NewLinkBuilder().WithRoomNumber(0), role: link.RoleRegistration, status: http.StatusUnprocessableEntity, reason: link.ReasonMissingData},
		{name: "権限なし", link: builder.NewLinkBuilder(), role: link.Role("staff"), status: http.StatusForbidden, reason: link.ReasonInsufficientRole},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			issued := s.links.IssueLinkWithRole(s.T(), s.DB, tt.link, tt.role)

			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, startURL(issued.Token), nil, "")

			body := httptest.AssertErrorResponse(s.T(), rec, tt.status, "")
			s.Equal(tt.reason.String(), body.Detail["reason"])
		})
	}

	s.Run("期限切れトークン", func() {
		issued := s.links.IssueLink(s.T(), s.DB, builder.NewLinkBuilder())

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, startURL(s.links.ExpiredToken(s.T(), issued.ID)), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid or expired link")
	})

	s.Run("存在しないリンク", func() {
		issued := s.links.IssueLink(s.T(), s.DB, builder.NewLinkBuilder())
		_, err := s.DB.Exec(s.T().Context(), "DELETE FROM registration_links WHERE id = $1", issued.ID)
		require.NoError(s.T(), err)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, startURL(issued.Token), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid or expired link")
	})
}

func (s *registrationFlowSuite) TestUnknownFlow() {
	s.Run("未知のフローIDは404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, flowURL, nil, "00000000-0000-0000-0000-000000000001")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Registration flow not found")
	})
}
