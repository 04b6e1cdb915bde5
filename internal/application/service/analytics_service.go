package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/analytics"
	"github.com/sangkips/marketplace-api/internal/config"
	"github.com/sangkips/marketplace-api/internal/domain/access"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/sangkips/marketplace-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	defaultTopN         = 10
	defaultRecentOrders = 10
	maxTopProducts      = 100
)

// AnalyticsService computes the platform and seller reports
type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	userRepo      repository.UserRepository
	productRepo   repository.ProductRepository
	sellerRepo    repository.SellerRepository
	orderRepo     repository.OrderRepository
	cfg           config.AnalyticsConfig
	now           func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	analyticsRepo repository.AnalyticsRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	sellerRepo repository.SellerRepository,
	orderRepo repository.OrderRepository,
	cfg config.AnalyticsConfig,
) *AnalyticsService {
	if cfg.DefaultWindowDays <= 0 {
		cfg.DefaultWindowDays = 30
	}
	if cfg.TopN <= 0 {
		cfg.TopN = defaultTopN
	}
	if cfg.RecentOrders <= 0 {
		cfg.RecentOrders = defaultRecentOrders
	}
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		userRepo:      userRepo,
		productRepo:   productRepo,
		sellerRepo:    sellerRepo,
		orderRepo:     orderRepo,
		cfg:           cfg,
		now:           time.Now,
	}
}

// WithClock replaces the time source, mainly for tests
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

// window resolves the requested bounds. A start after the resolved end is
// rejected, including a future start with no end given.
func (s *AnalyticsService) window(start, end *time.Time) (analytics.Window, error) {
	w := analytics.ResolveWindowWithDefault(start, end, s.now(), s.cfg.DefaultWindow())
	if w.Start.After(w.End) {
		return analytics.Window{}, apperror.NewFieldError("start_date", "start_date must not be after end_date")
	}
	return w, nil
}

// PlatformAnalytics is the admin dashboard report
type PlatformAnalytics struct {
	TotalRevenue         decimal.Decimal           `json:"total_revenue"`
	PreviousRevenue      decimal.Decimal           `json:"previous_revenue"`
	TotalOrders          int                       `json:"total_orders"`
	PreviousOrders       int                       `json:"previous_orders"`
	TotalCustomers       int64                     `json:"total_customers"`
	TotalSellers         int64                     `json:"total_sellers"`
	TotalProducts        int64                     `json:"total_products"`
	ActiveProducts       int64                     `json:"active_products"`
	PendingSellers       int64                     `json:"pending_sellers"`
	AverageOrderValue    decimal.Decimal           `json:"average_order_value"`
	ConversionRate       float64                   `json:"conversion_rate"`
	RevenueGrowth        float64                   `json:"revenue_growth"`
	OrderGrowth          float64                   `json:"order_growth"`
	TopSellingProducts   []analytics.ProductSales  `json:"top_selling_products"`
	TopPerformingSellers []analytics.SellerSales   `json:"top_performing_sellers"`
	RecentOrders         []entity.Order            `json:"recent_orders"`
	SalesByDay           []analytics.DailySales    `json:"sales_by_day"`
	SalesByCategory      []analytics.CategorySales `json:"sales_by_category"`
	OrdersByStatus       []repository.StatusCount  `json:"orders_by_status"`
	Period               analytics.Window          `json:"period"`
	PreviousPeriod       analytics.Window          `json:"previous_period"`
}

// PlatformAnalytics builds the global report for [start, end]
func (s *AnalyticsService) PlatformAnalytics(ctx context.Context, start, end *time.Time) (*PlatformAnalytics, error) {
	if _, err := access.Require(ctx, enum.UserRoleAdmin); err != nil {
		return nil, err
	}

	window, err := s.window(start, end)
	if err != nil {
		return nil, err
	}
	previous := window.Previous()
	scope := analytics.Global()
	customerRole := enum.UserRoleCustomer
	sellerRole := enum.UserRoleSeller
	activeStatus := enum.ProductStatusActive
	unverified := false

	var (
		orders, prevOrders, recent                                   []entity.Order
		items                                                        []entity.OrderItem
		byStatus                                                     []repository.StatusCount
		customers, sellers, products, activeProducts, pendingSellers int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = s.analyticsRepo.FetchOrders(gctx, window, scope)
		return err
	})
	g.Go(func() (err error) {
		prevOrders, err = s.analyticsRepo.FetchOrders(gctx, previous, scope)
		return err
	})
	g.Go(func() (err error) {
		items, err = s.analyticsRepo.FetchOrderItems(gctx, &window, scope)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.analyticsRepo.RecentOrders(gctx, s.cfg.RecentOrders)
		return err
	})
	g.Go(func() (err error) {
		byStatus, err = s.analyticsRepo.CountOrdersByStatus(gctx, window)
		return err
	})
	g.Go(func() (err error) {
		customers, err = s.userRepo.Count(gctx, &repository.UserFilter{Role: &customerRole})
		return err
	})
	g.Go(func() (err error) {
		sellers, err = s.userRepo.Count(gctx, &repository.UserFilter{Role: &sellerRole})
		return err
	})
	g.Go(func() (err error) {
		products, err = s.productRepo.Count(gctx, &repository.ProductFilter{})
		return err
	})
	g.Go(func() (err error) {
		activeProducts, err = s.productRepo.Count(gctx, &repository.ProductFilter{Status: &activeStatus})
		return err
	})
	g.Go(func() (err error) {
		pendingSellers, err = s.sellerRepo.Count(gctx, &repository.SellerFilter{IsVerified: &unverified})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	current := analytics.Summarize(orders, scope)
	prev := analytics.Summarize(prevOrders, scope)

	topSellers, err := s.rankSellers(ctx, orders)
	if err != nil {
		return nil, err
	}

	byProductRevenue := func(p analytics.ProductSales) decimal.Decimal { return p.TotalRevenue }
	byCategoryRevenue := func(c analytics.CategorySales) decimal.Decimal { return c.Revenue }
	categories := analytics.GroupByCategory(scope.FilterItems(items))

	return &PlatformAnalytics{
		TotalRevenue:         current.Revenue,
		PreviousRevenue:      prev.Revenue,
		TotalOrders:          current.Orders,
		PreviousOrders:       prev.Orders,
		TotalCustomers:       customers,
		TotalSellers:         sellers,
		TotalProducts:        products,
		ActiveProducts:       activeProducts,
		PendingSellers:       pendingSellers,
		AverageOrderValue:    current.AverageOrderValue,
		ConversionRate:       analytics.ConversionRate(current.Orders, customers),
		RevenueGrowth:        analytics.GrowthPercent(current.Revenue, prev.Revenue),
		OrderGrowth:          analytics.GrowthPercentCount(current.Orders, prev.Orders),
		TopSellingProducts:   analytics.TopN(analytics.GroupByProduct(scope.FilterItems(items)), s.cfg.TopN, byProductRevenue),
		TopPerformingSellers: topSellers,
		RecentOrders:         recent,
		SalesByDay:           current.Daily,
		SalesByCategory:      analytics.TopN(categories, len(categories), byCategoryRevenue),
		OrdersByStatus:       byStatus,
		Period:               window,
		PreviousPeriod:       previous,
	}, nil
}

// rankSellers picks the top sellers by revenue and attaches their profiles,
// keeping the ranking order.
func (s *AnalyticsService) rankSellers(ctx context.Context, orders []entity.Order) ([]analytics.SellerSales, error) {
	ranked := analytics.TopN(analytics.GroupBySeller(orders), s.cfg.TopN, func(ss analytics.SellerSales) decimal.Decimal {
		return ss.TotalRevenue
	})
	if len(ranked) == 0 {
		return ranked, nil
	}

	ids := make([]uuid.UUID, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.SellerID)
	}
	profiles, err := s.sellerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*entity.SellerProfile, len(profiles))
	for i := range profiles {
		byID[profiles[i].ID] = &profiles[i]
	}
	for i := range ranked {
		ranked[i].Seller = byID[ranked[i].SellerID]
	}
	return ranked, nil
}

// UserAnalytics is the admin report on sign-ups and activity
type UserAnalytics struct {
	TotalUsers        int64                  `json:"total_users"`
	NewUsersToday     int64                  `json:"new_users_today"`
	NewUsersThisWeek  int64                  `json:"new_users_this_week"`
	NewUsersThisMonth int64                  `json:"new_users_this_month"`
	ActiveCustomers   int64                  `json:"active_customers"`
	ActiveSellers     int64                  `json:"active_sellers"`
	UsersByRole       []repository.RoleCount `json:"users_by_role"`
	UserGrowth        []analytics.UserGrowth `json:"user_growth"`
	Period            analytics.Window       `json:"period"`
}

// UserAnalytics builds the user report. Growth covers [start, end]; the
// "new users" counters are relative to the start of the current UTC day.
func (s *AnalyticsService) UserAnalytics(ctx context.Context, start, end *time.Time) (*UserAnalytics, error) {
	if _, err := access.Require(ctx, enum.UserRoleAdmin); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	window, err := s.window(start, end)
	if err != nil {
		return nil, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := today.AddDate(0, 0, -7)
	monthAgo := today.AddDate(0, 0, -30)
	customerRole := enum.UserRoleCustomer
	sellerRole := enum.UserRoleSeller
	active := true

	out := &UserAnalytics{Period: window}
	var users []entity.User

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.TotalUsers, err = s.userRepo.Count(gctx, &repository.UserFilter{})
		return err
	})
	g.Go(func() (err error) {
		out.NewUsersToday, err = s.userRepo.Count(gctx, &repository.UserFilter{CreatedFrom: &today})
		return err
	})
	g.Go(func() (err error) {
		out.NewUsersThisWeek, err = s.userRepo.Count(gctx, &repository.UserFilter{CreatedFrom: &weekAgo})
		return err
	})
	g.Go(func() (err error) {
		out.NewUsersThisMonth, err = s.userRepo.Count(gctx, &repository.UserFilter{CreatedFrom: &monthAgo})
		return err
	})
	g.Go(func() (err error) {
		out.ActiveCustomers, err = s.userRepo.Count(gctx, &repository.UserFilter{Role: &customerRole, IsActive: &active})
		return err
	})
	g.Go(func() (err error) {
		out.ActiveSellers, err = s.userRepo.Count(gctx, &repository.UserFilter{Role: &sellerRole, IsActive: &active})
		return err
	})
	g.Go(func() (err error) {
		out.UsersByRole, err = s.analyticsRepo.CountUsersByRole(gctx)
		return err
	})
	g.Go(func() (err error) {
		users, err = s.analyticsRepo.FetchUsers(gctx, window, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.UserGrowth = analytics.GroupUsersByDay(users)
	return out, nil
}

// SalesAnalytics is a seller's own sales report
type SalesAnalytics struct {
	TotalRevenue      decimal.Decimal        `json:"total_revenue"`
	PreviousRevenue   decimal.Decimal        `json:"previous_revenue"`
	TotalOrders       int                    `json:"total_orders"`
	PreviousOrders    int                    `json:"previous_orders"`
	AverageOrderValue decimal.Decimal        `json:"average_order_value"`
	RevenueGrowth     float64                `json:"revenue_growth"`
	OrderGrowth       float64                `json:"order_growth"`
	TotalProducts     int64                  `json:"total_products"`
	LowStockProducts  int64                  `json:"low_stock_products"`
	PendingOrders     int64                  `json:"pending_orders"`
	RecentSales       []analytics.DailySales `json:"recent_sales"`
	Period            analytics.Window       `json:"period"`
}

// SalesFilter narrows a seller report to one category or product
type SalesFilter struct {
	Start      *time.Time
	End        *time.Time
	CategoryID *uuid.UUID
	ProductID  *uuid.UUID
}

// SalesAnalytics builds the report of the calling seller. Only orders of
// that seller are ever fetched or counted.
func (s *AnalyticsService) SalesAnalytics(ctx context.Context, filter SalesFilter) (*SalesAnalytics, error) {
	_, sellerID, err := access.RequireSeller(ctx)
	if err != nil {
		return nil, err
	}

	window, err := s.window(filter.Start, filter.End)
	if err != nil {
		return nil, err
	}
	previous := window.Previous()
	scope := analytics.ForSeller(sellerID).
		WithCategory(filter.CategoryID).
		WithProduct(filter.ProductID)

	var (
		orders, prevOrders                     []entity.Order
		totalProducts, lowStock, pendingOrders int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = s.analyticsRepo.FetchOrders(gctx, window, scope)
		return err
	})
	g.Go(func() (err error) {
		prevOrders, err = s.analyticsRepo.FetchOrders(gctx, previous, scope)
		return err
	})
	g.Go(func() (err error) {
		totalProducts, err = s.productRepo.Count(gctx, &repository.ProductFilter{SellerID: &sellerID})
		return err
	})
	g.Go(func() (err error) {
		lowStock, err = s.productRepo.Count(gctx, &repository.ProductFilter{SellerID: &sellerID, LowStock: true})
		return err
	})
	g.Go(func() (err error) {
		pendingOrders, err = s.orderRepo.Count(gctx, &repository.OrderFilter{
			SellerID: &sellerID,
			Statuses: enum.OpenOrderStatuses,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	current := analytics.Summarize(orders, scope)
	prev := analytics.Summarize(prevOrders, scope)

	return &SalesAnalytics{
		TotalRevenue:      current.Revenue,
		PreviousRevenue:   prev.Revenue,
		TotalOrders:       current.Orders,
		PreviousOrders:    prev.Orders,
		AverageOrderValue: current.AverageOrderValue,
		RevenueGrowth:     analytics.GrowthPercent(current.Revenue, prev.Revenue),
		OrderGrowth:       analytics.GrowthPercentCount(current.Orders, prev.Orders),
		TotalProducts:     totalProducts,
		LowStockProducts:  lowStock,
		PendingOrders:     pendingOrders,
		RecentSales:       current.Daily,
		Period:            window,
	}, nil
}

// TopProducts ranks the calling seller's products by all-time revenue
func (s *AnalyticsService) TopProducts(ctx context.Context, limit int, categoryID *uuid.UUID) ([]analytics.ProductSales, error) {
	_, sellerID, err := access.RequireSeller(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.cfg.TopN
	}
	if limit > maxTopProducts {
		limit = maxTopProducts
	}

	scope := analytics.ForSeller(sellerID).WithCategory(categoryID)
	items, err := s.analyticsRepo.FetchOrderItems(ctx, nil, scope)
	if err != nil {
		return nil, err
	}

	return analytics.TopN(analytics.GroupByProduct(scope.FilterItems(items)), limit, func(p analytics.ProductSales) decimal.Decimal {
		return p.TotalRevenue
	}), nil
}
