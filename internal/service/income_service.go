package service

import (
	"context"
	"io"
	"sort"
	"time"

	"groceryhub/internal/apierror"
	"groceryhub/internal/authz"
	"groceryhub/internal/dto"
	"groceryhub/internal/infra"
	"groceryhub/internal/model"
	"groceryhub/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultWeeksBack = 4
	MaxWeeksBack     = 52
	summaryDays      = 30
	summaryRecent    = 5
)

type IncomeService interface {
	Record(ctx context.Context, actor authz.Actor, req dto.RecordIncomeRequest) (dto.IncomeResponse, error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, req dto.UpdateIncomeRequest) (dto.IncomeResponse, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (dto.IncomeResponse, error)
	List(ctx context.Context, actor authz.Actor, filter dto.IncomeFilter) ([]dto.IncomeResponse, error)
	Aggregate(ctx context.Context, actor authz.Actor, filter dto.IncomeFilter) (dto.IncomeAggregateResponse, error)
	MonthlyReport(ctx context.Context, actor authz.Actor, year, month int) (dto.MonthlyReportResponse, error)
	MonthlyReportPDF(ctx context.Context, actor authz.Actor, year, month int, w io.Writer) error
	WeeklyTrend(ctx context.Context, actor authz.Actor, weeksBack int) (dto.WeeklyTrendResponse, error)
	MySummary(ctx context.Context, actor authz.Actor) (dto.IncomeSummaryResponse, error)
}

type incomeService struct {
	repos repository.Repositories
	uow   repository.UnitOfWork
	now   Clock
}

func NewIncomeService(repos repository.Repositories, uow repository.UnitOfWork, now Clock) IncomeService {
	return &incomeService{repos: repos, uow: uow, now: orNow(now)}
}

func (s *incomeService) today() time.Time { return model.CivilDate(s.now()) }

func duplicateIncome() error {
	return apierror.Duplicate(apierror.CodeDuplicateEntry, "date",
		"income for this store and date has already been recorded")
}

func (s *incomeService) validateDate(d time.Time) error {
	if d.After(s.today()) {
		return apierror.Validation(apierror.CodeFutureDate, "date", "date cannot be in the future")
	}
	return nil
}

// Amounts are stored as decimal(12,2).
const amountIntDigits = 10

func validateAmount(a decimal.Decimal) error {
	return validateMoney("amount", apierror.CodeNonPositiveAmount, a, amountIntDigits)
}

func (s *incomeService) Record(ctx context.Context, actor authz.Actor, req dto.RecordIncomeRequest) (dto.IncomeResponse, error) {
	storeID, err := parseID("store_id", req.StoreID)
	if err != nil {
		return dto.IncomeResponse{}, err
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return dto.IncomeResponse{}, err
	}
	if err := s.validateDate(date); err != nil {
		return dto.IncomeResponse{}, err
	}
	if err := validateAmount(req.Amount); err != nil {
		return dto.IncomeResponse{}, err
	}

	var created *model.DailyIncome
	err = s.uow.Do(ctx, func(tx repository.Repositories) error {
		store, err := tx.Stores.FindByID(ctx, storeID, true)
		if err != nil {
			return notFound(err, "store not found")
		}
		if err := actor.RequireWrite(store.ID); err != nil {
			return err
		}
		if store.IsDeleted {
			return apierror.Validation(apierror.CodeDeletedStore, "store_id", "cannot record income for a deleted store")
		}
		if _, err := tx.Income.FindByStoreDate(ctx, storeID, date); err == nil {
			return duplicateIncome()
		} else if !isNotFound(err) {
			return err
		}

		row := &model.DailyIncome{
			StoreID:      storeID,
			Date:         date,
			Amount:       req.Amount,
			RecordedByID: actor.UserID,
			Notes:        req.Notes,
		}
		if err := tx.Income.Create(ctx, row); err != nil {
			if isDuplicate(err) {
				return duplicateIncome()
			}
			return rejectedBy(err, "amount")
		}
		created, err = tx.Income.FindByID(ctx, row.ID)
		return err
	})
	if err != nil {
		return dto.IncomeResponse{}, err
	}
	return mapIncome(*created), nil
}

func (s *incomeService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, req dto.UpdateIncomeRequest) (dto.IncomeResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return dto.IncomeResponse{}, err
	}
	newDate, err := parseOptionalDate("date", derefString(req.Date))
	if err != nil {
		return dto.IncomeResponse{}, err
	}
	if newDate != nil {
		if err := s.validateDate(*newDate); err != nil {
			return dto.IncomeResponse{}, err
		}
	}
	if req.Amount != nil {
		if err := validateAmount(*req.Amount); err != nil {
			return dto.IncomeResponse{}, err
		}
	}

	var updated *model.DailyIncome
	err = s.uow.Do(ctx, func(tx repository.Repositories) error {
		row, err := tx.Income.FindByID(ctx, id)
		if err != nil {
			return notFound(err, "income record not found")
		}
		if newDate != nil && !newDate.Equal(model.CivilDate(row.Date)) {
			existing, err := tx.Income.FindByStoreDate(ctx, row.StoreID, *newDate)
			if err == nil && existing.ID != id {
				return duplicateIncome()
			} else if err != nil && !isNotFound(err) {
				return err
			}
			row.Date = *newDate
		}
		if req.Amount != nil {
			row.Amount = *req.Amount
		}
		if req.Notes != nil {
			row.Notes = *req.Notes
		}
		row.Store, row.RecordedBy = nil, nil
		if err := tx.Income.Update(ctx, row); err != nil {
			if isDuplicate(err) {
				return duplicateIncome()
			}
			return rejectedBy(err, "amount")
		}
		updated, err = tx.Income.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return dto.IncomeResponse{}, err
	}
	return mapIncome(*updated), nil
}

func (s *incomeService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	return s.uow.Do(ctx, func(tx repository.Repositories) error {
		if _, err := tx.Income.FindByID(ctx, id); err != nil {
			return notFound(err, "income record not found")
		}
		return tx.Income.Delete(ctx, id)
	})
}

// visible reports whether the actor may read ledger rows of storeID.
func visible(actor authz.Actor, storeID uuid.UUID) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.AssignedStoreID != nil && *actor.AssignedStoreID == storeID
}

func (s *incomeService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (dto.IncomeResponse, error) {
	row, err := s.repos.Income.FindByID(ctx, id)
	if err != nil {
		return dto.IncomeResponse{}, notFound(err, "income record not found")
	}
	if !visible(actor, row.StoreID) {
		return dto.IncomeResponse{}, apierror.NotFound("income record not found")
	}
	return mapIncome(*row), nil
}

// scopedQuery builds the ledger query for the actor; ok is false when the
// actor can see nothing matching the filter.
func scopedQuery(actor authz.Actor, filter dto.IncomeFilter) (q repository.IncomeQuery, ok bool, err error) {
	requested, err := parseOptionalID("store_id", filter.StoreID)
	if err != nil {
		return q, false, err
	}
	if q.Start, err = parseOptionalDate("start_date", filter.StartDate); err != nil {
		return q, false, err
	}
	if q.End, err = parseOptionalDate("end_date", filter.EndDate); err != nil {
		return q, false, err
	}
	if q.RecordedByID, err = parseOptionalID("recorded_by", filter.RecordedByID); err != nil {
		return q, false, err
	}
	q.Ordering = filter.Ordering

	q.StoreID, ok = actor.WriteScope().Narrow(requested)
	return q, ok, nil
}

func (s *incomeService) List(ctx context.Context, actor authz.Actor, filter dto.IncomeFilter) ([]dto.IncomeResponse, error) {
	q, ok, err := scopedQuery(actor, filter)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []dto.IncomeResponse{}, nil
	}
	rows, err := s.repos.Income.List(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IncomeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapIncome(r))
	}
	return out, nil
}

func (s *incomeService) Aggregate(ctx context.Context, actor authz.Actor, filter dto.IncomeFilter) (dto.IncomeAggregateResponse, error) {
	q, ok, err := scopedQuery(actor, filter)
	if err != nil {
		return dto.IncomeAggregateResponse{}, err
	}
	resp := dto.IncomeAggregateResponse{
		TotalIncome:   decimal.Zero,
		AverageIncome: decimal.Zero,
		MaxIncome:     decimal.Zero,
		MinIncome:     decimal.Zero,
		DateRange:     dto.DateRange{Start: dateString(q.Start), End: dateString(q.End)},
	}
	if !ok {
		return resp, nil
	}

	t, err := s.repos.Income.Totals(ctx, q)
	if err != nil {
		return resp, err
	}
	resp.TotalIncome = t.Total
	resp.AverageIncome = t.Average.Round(2)
	resp.RecordsCount = t.Records
	resp.MaxIncome = t.Max
	resp.MinIncome = t.Min
	return resp, nil
}

func (s *incomeService) MonthlyReport(ctx context.Context, actor authz.Actor, year, month int) (dto.MonthlyReportResponse, error) {
	if month < 1 || month > 12 {
		return dto.MonthlyReportResponse{}, apierror.Validation(apierror.CodeInvalidPeriod, "month", "month must be between 1 and 12")
	}
	if year < 1 || year > 9999 {
		return dto.MonthlyReportResponse{}, apierror.Validation(apierror.CodeInvalidPeriod, "year", "year is out of range")
	}

	resp := dto.MonthlyReportResponse{
		Year:           year,
		Month:          month,
		DailyBreakdown: []dto.DailyBucket{},
		Summary:        dto.MonthlySummary{TotalIncome: decimal.Zero, AverageDaily: decimal.Zero},
	}
	if actor.IsAdmin() {
		resp.StoreBreakdown = []dto.StoreBucket{}
	}

	storeID, ok := actor.WriteScope().Narrow(nil)
	if !ok {
		return resp, nil
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	rows, err := s.repos.Income.List(ctx, repository.IncomeQuery{StoreID: storeID, Start: &start, End: &end, Ordering: "date"})
	if err != nil {
		return resp, err
	}

	days := map[string]*dto.DailyBucket{}
	stores := map[uuid.UUID]*dto.StoreBucket{}
	total := decimal.Zero
	for _, r := range rows {
		key := r.Date.Format(model.DateLayout)
		day, ok := days[key]
		if !ok {
			day = &dto.DailyBucket{Date: key, Amount: decimal.Zero}
			days[key] = day
		}
		day.Amount = day.Amount.Add(r.Amount)
		day.RecordsCount++
		total = total.Add(r.Amount)

		if actor.IsAdmin() {
			sb, ok := stores[r.StoreID]
			if !ok {
				sb = &dto.StoreBucket{StoreID: r.StoreID.String(), Total: decimal.Zero}
				if r.Store != nil {
					sb.StoreName = r.Store.Name
				}
				stores[r.StoreID] = sb
			}
			sb.Total = sb.Total.Add(r.Amount)
			sb.RecordsCount++
		}
	}

	for _, d := range days {
		resp.DailyBreakdown = append(resp.DailyBreakdown, *d)
	}
	sort.Slice(resp.DailyBreakdown, func(i, j int) bool {
		return resp.DailyBreakdown[i].Date < resp.DailyBreakdown[j].Date
	})
	for _, sb := range stores {
		resp.StoreBreakdown = append(resp.StoreBreakdown, *sb)
	}
	sort.Slice(resp.StoreBreakdown, func(i, j int) bool {
		return resp.StoreBreakdown[i].StoreName < resp.StoreBreakdown[j].StoreName
	})

	resp.Summary.TotalIncome = total
	resp.Summary.TotalDaysRecorded = len(days)
	if len(days) > 0 {
		resp.Summary.AverageDaily = total.Div(decimal.NewFromInt(int64(len(days)))).Round(2)
	}
	return resp, nil
}

func (s *incomeService) MonthlyReportPDF(ctx context.Context, actor authz.Actor, year, month int, w io.Writer) error {
	report, err := s.MonthlyReport(ctx, actor, year, month)
	if err != nil {
		return err
	}
	scope := "All stores"
	if !actor.IsAdmin() {
		scope = "No store assigned"
		if actor.HasStore() {
			store, err := s.repos.Stores.FindByID(ctx, *actor.AssignedStoreID, true)
			if err != nil {
				return err
			}
			scope = store.Name
		}
	}
	return infra.WriteMonthlyReportPDF(w, report, scope)
}

func (s *incomeService) WeeklyTrend(ctx context.Context, actor authz.Actor, weeksBack int) (dto.WeeklyTrendResponse, error) {
	if weeksBack == 0 {
		weeksBack = DefaultWeeksBack
	}
	if weeksBack < 1 || weeksBack > MaxWeeksBack {
		return dto.WeeklyTrendResponse{}, apierror.Validation(apierror.CodeInvalidPeriod, "weeks_back",
			"weeks_back must be between 1 and 52")
	}

	end := s.today()
	start := end.AddDate(0, 0, -7*weeksBack)
	resp := dto.WeeklyTrendResponse{
		WeeksBack: weeksBack,
		StartDate: start.Format(model.DateLayout),
		EndDate:   end.Format(model.DateLayout),
		Weeks:     []dto.WeeklyBucket{},
	}

	storeID, ok := actor.WriteScope().Narrow(nil)
	if !ok {
		return resp, nil
	}
	rows, err := s.repos.Income.List(ctx, repository.IncomeQuery{StoreID: storeID, Start: &start, End: &end, Ordering: "date"})
	if err != nil {
		return resp, err
	}

	weeks := map[string]*dto.WeeklyBucket{}
	for _, r := range rows {
		key := model.WeekStart(r.Date).Format(model.DateLayout)
		wb, ok := weeks[key]
		if !ok {
			wb = &dto.WeeklyBucket{WeekStart: key, Total: decimal.Zero}
			weeks[key] = wb
		}
		wb.Total = wb.Total.Add(r.Amount)
		wb.RecordsCount++
	}
	for _, wb := range weeks {
		resp.Weeks = append(resp.Weeks, *wb)
	}
	sort.Slice(resp.Weeks, func(i, j int) bool { return resp.Weeks[i].WeekStart < resp.Weeks[j].WeekStart })
	return resp, nil
}

func (s *incomeService) MySummary(ctx context.Context, actor authz.Actor) (dto.IncomeSummaryResponse, error) {
	if !actor.IsSupplier() {
		return dto.IncomeSummaryResponse{}, apierror.Forbidden("only suppliers can access this endpoint")
	}
	if !actor.HasStore() {
		return dto.IncomeSummaryResponse{}, apierror.NotFound("no store assigned")
	}

	store, err := s.repos.Stores.FindByID(ctx, *actor.AssignedStoreID, true)
	if err != nil {
		return dto.IncomeSummaryResponse{}, notFound(err, "store not found")
	}
	end := s.today()
	start := end.AddDate(0, 0, -summaryDays)
	q := repository.IncomeQuery{StoreID: actor.AssignedStoreID, Start: &start, End: &end}

	t, err := s.repos.Income.Totals(ctx, q)
	if err != nil {
		return dto.IncomeSummaryResponse{}, err
	}
	q.Ordering, q.Limit = "-date", summaryRecent
	recent, err := s.repos.Income.List(ctx, q)
	if err != nil {
		return dto.IncomeSummaryResponse{}, err
	}

	storeIDStr, storeName := store.ID.String(), store.Name
	resp := dto.IncomeSummaryResponse{
		StoreID:       &storeIDStr,
		StoreName:     &storeName,
		PeriodStart:   start.Format(model.DateLayout),
		PeriodEnd:     end.Format(model.DateLayout),
		TotalIncome:   t.Total,
		AverageIncome: t.Average.Round(2),
		RecordsCount:  t.Records,
		Recent:        make([]dto.IncomeResponse, 0, len(recent)),
	}
	for _, r := range recent {
		resp.Recent = append(resp.Recent, mapIncome(r))
	}
	return resp, nil
}
