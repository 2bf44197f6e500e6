// Package services chứa client Pathao Courier: cấp token theo tài khoản
// merchant (cache và tự làm mới trước khi hết hạn) và tạo vận đơn.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"hok_commerce/config"
	"hok_commerce/internal/common"
	"hok_commerce/internal/global"
	"hok_commerce/internal/logger"
)

// tokenLifetime là thời gian giữ token trong cache. Pathao cấp token
// sống 60 phút; làm mới sớm 10 phút để không gửi request với token chết.
const tokenLifetime = 50 * time.Minute

// ShipmentRequest là vận đơn gửi sang Pathao (đặt tên field theo API Pathao)
type ShipmentRequest struct {
	StoreID            int     `json:"store_id"`
	MerchantOrderID    string  `json:"merchant_order_id"`
	RecipientName      string  `json:"recipient_name"`
	RecipientPhone     string  `json:"recipient_phone"`
	RecipientAddress   string  `json:"recipient_address"`
	RecipientCity      int64   `json:"recipient_city"`
	RecipientZone      int64   `json:"recipient_zone"`
	RecipientArea      int64   `json:"recipient_area,omitempty"`
	DeliveryType       int64   `json:"delivery_type"`
	ItemType           int64   `json:"item_type"`
	SpecialInstruction string  `json:"special_instruction"`
	ItemQuantity       int64   `json:"item_quantity"`
	ItemWeight         float64 `json:"item_weight"`
	ItemDescription    string  `json:"item_description"`
	AmountToCollect    float64 `json:"amount_to_collect"`
}

// PathaoService gọi API Pathao Courier. Token được cache dùng chung
// giữa các request, bảo vệ bằng mutex.
type PathaoService struct {
	cfg        *config.Configuration
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewPathaoService tạo client Pathao từ cấu hình toàn cục
func NewPathaoService() *PathaoService {
	return NewPathaoServiceWithConfig(global.MongoDB_ServerConfig)
}

// NewPathaoServiceWithConfig tạo client Pathao với cấu hình tùy chọn (dùng trong test)
func NewPathaoServiceWithConfig(cfg *config.Configuration) *PathaoService {
	return &PathaoService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// IsConfigured kiểm tra đã có đủ thông tin tài khoản Pathao trong env chưa
func (s *PathaoService) IsConfigured() bool {
	return s.cfg != nil &&
		s.cfg.Pathao_ClientID != "" &&
		s.cfg.Pathao_ClientSecret != "" &&
		s.cfg.Pathao_Username != "" &&
		s.cfg.Pathao_Password != ""
}

// getToken trả về token còn hạn trong cache, hoặc gọi issue-token cấp mới
func (s *PathaoService) getToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accessToken != "" && time.Now().Before(s.tokenExpiry) {
		return s.accessToken, nil
	}

	payload := map[string]interface{}{
		"client_id":     s.cfg.Pathao_ClientID,
		"client_secret": s.cfg.Pathao_ClientSecret,
		"username":      s.cfg.Pathao_Username,
		"password":      s.cfg.Pathao_Password,
		"grant_type":    "password",
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := s.post(ctx, "/aladdin/api/v1/issue-token", "", payload, &result); err != nil {
		logger.GetAppLogger().WithField("error", err.Error()).Error("Cấp token Pathao thất bại")
		return "", common.NewError(common.ErrCodeBusinessOperation, "Xác thực với Pathao thất bại", common.StatusBadGateway, nil)
	}
	if result.AccessToken == "" {
		return "", common.NewError(common.ErrCodeBusinessOperation, "Pathao không trả về access token", common.StatusBadGateway, nil)
	}

	s.accessToken = result.AccessToken
	s.tokenExpiry = time.Now().Add(tokenLifetime)
	return s.accessToken, nil
}

// invalidateToken xóa token cache để lần gọi sau cấp token mới
func (s *PathaoService) invalidateToken() {
	s.mu.Lock()
	s.accessToken = ""
	s.mu.Unlock()
}

// CreateOrder tạo vận đơn trên Pathao và trả về response của Pathao
func (s *PathaoService) CreateOrder(ctx context.Context, shipment ShipmentRequest) (map[string]interface{}, error) {
	if !s.IsConfigured() {
		return nil, common.NewError(common.ErrCodeBusinessOperation, "Chưa cấu hình tài khoản Pathao", common.StatusServiceUnavailable, nil)
	}

	token, err := s.getToken(ctx)
	if err != nil {
		return nil, err
	}

	if shipment.StoreID == 0 {
		shipment.StoreID = s.cfg.Pathao_StoreID
	}
	if shipment.MerchantOrderID == "" {
		shipment.MerchantOrderID = fmt.Sprintf("ORDER-%d", time.Now().UnixMilli())
	}

	var result map[string]interface{}
	err = s.post(ctx, "/aladdin/api/v1/orders", token, shipment, &result)

	// Token bị thu hồi sớm hơn dự kiến: cấp token mới và thử lại một lần
	var apiErr *apiError
	if errors.As(err, &apiErr) && apiErr.status == http.StatusUnauthorized {
		s.invalidateToken()
		if token, err = s.getToken(ctx); err != nil {
			return nil, err
		}
		err = s.post(ctx, "/aladdin/api/v1/orders", token, shipment, &result)
	}

	if err != nil {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"merchantOrderId": shipment.MerchantOrderID,
			"error":           err.Error(),
		}).Error("Tạo vận đơn Pathao thất bại")
		return nil, common.NewError(common.ErrCodeBusinessOperation, "Tạo vận đơn Pathao thất bại", common.StatusBadGateway, map[string]interface{}{"cause": err.Error()})
	}

	logger.GetAppLogger().WithField("merchantOrderId", shipment.MerchantOrderID).Info("Tạo vận đơn Pathao thành công")
	return result, nil
}

// post gửi một POST JSON tới API Pathao và decode response vào out
func (s *PathaoService) post(ctx context.Context, path, token string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Pathao_BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &apiError{status: resp.StatusCode, body: string(respBody)}
	}

	if out != nil && len(respBody) > 0 {
		return json.Unmarshal(respBody, out)
	}
	return nil
}

// apiError giữ status HTTP của response lỗi từ Pathao
type apiError struct {
	status int
	body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("pathao API trả về status %d: %s", e.status, e.body)
}
