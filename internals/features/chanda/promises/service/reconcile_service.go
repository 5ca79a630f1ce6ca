package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	chandaTypeModel "jamaatku_backend/internals/features/chanda/chanda_types/model"
	"jamaatku_backend/internals/features/chanda/promises/model"
	memberModel "jamaatku_backend/internals/features/members/member/model"
	helper "jamaatku_backend/internals/helpers"
)

/* =========================================================
   ERRORS
   ========================================================= */

var (
	ErrDuplicatePromise = errors.New("promise untuk anggota, kategori, dan tahun tersebut sudah ada")
	ErrInvalidAmount    = errors.New("nominal tidak valid")
)

// BatchViolation mengumpulkan SEMUA nama kategori yang bermasalah,
// bukan hanya yang pertama, supaya admin bisa memperbaiki sekaligus.
type BatchViolation struct {
	MissingTypes []string
	Duplicates   []string
}

func (v *BatchViolation) Error() string {
	var parts []string
	if len(v.MissingTypes) > 0 {
		parts = append(parts, "kategori tidak terdaftar: "+strings.Join(v.MissingTypes, ", "))
	}
	if len(v.Duplicates) > 0 {
		parts = append(parts, "promise tahun tersebut sudah ada: "+strings.Join(v.Duplicates, ", "))
	}
	return strings.Join(parts, "; ")
}

func (v *BatchViolation) HasViolations() bool {
	return len(v.MissingTypes) > 0 || len(v.Duplicates) > 0
}

/* =========================================================
   LEDGER ANGGOTA
   ========================================================= */

type LedgerPromise struct {
	Promise  model.PromiseModel
	TypeName string
	Payments []model.PaymentModel
	Summary  PromiseSummary
}

type MemberLedger struct {
	Member   memberModel.MemberModel
	Promises []LedgerPromise
	Years    []YearSummary
}

// GetMemberLedger memuat seluruh promise + payment seorang anggota
// berdasarkan jamaat ID, lengkap dengan agregat per promise dan per tahun.
func GetMemberLedger(db *gorm.DB, jamaatID string) (*MemberLedger, error) {
	var member memberModel.MemberModel
	if err := db.Where("jamaat_id = ?", jamaatID).First(&member).Error; err != nil {
		return nil, err
	}

	ledger, err := loadLedgerForUser(db, member.ID)
	if err != nil {
		return nil, err
	}
	ledger.Member = member
	return ledger, nil
}

// GetOwnLedger versi self-service (dari user_id token).
func GetOwnLedger(db *gorm.DB, userID uuid.UUID) (*MemberLedger, error) {
	var member memberModel.MemberModel
	if err := db.First(&member, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	ledger, err := loadLedgerForUser(db, member.ID)
	if err != nil {
		return nil, err
	}
	ledger.Member = member
	return ledger, nil
}

func loadLedgerForUser(db *gorm.DB, userID uuid.UUID) (*MemberLedger, error) {
	var promises []model.PromiseModel
	if err := db.
		Where("promise_user_id = ?", userID).
		Order("promise_year DESC, promise_created_at ASC").
		Find(&promises).Error; err != nil {
		return nil, err
	}

	// nama kategori
	typeNames := map[string]string{}
	if len(promises) > 0 {
		typeIDs := make([]uuid.UUID, 0, len(promises))
		for _, p := range promises {
			typeIDs = append(typeIDs, p.ChandaTypeID)
		}
		var types []chandaTypeModel.ChandaTypeModel
		if err := db.Where("chanda_type_id IN ?", typeIDs).Find(&types).Error; err != nil {
			return nil, err
		}
		for _, t := range types {
			typeNames[t.ID.String()] = t.Name
		}
	}

	// payments per promise
	paymentsByPromise := map[string][]model.PaymentModel{}
	if len(promises) > 0 {
		promiseIDs := make([]uuid.UUID, 0, len(promises))
		for _, p := range promises {
			promiseIDs = append(promiseIDs, p.ID)
		}
		var payments []model.PaymentModel
		if err := db.
			Where("payment_promise_id IN ?", promiseIDs).
			Order("payment_paid_at ASC").
			Find(&payments).Error; err != nil {
			return nil, err
		}
		for _, pay := range payments {
			key := pay.PromiseID.String()
			paymentsByPromise[key] = append(paymentsByPromise[key], pay)
		}
	}

	out := &MemberLedger{
		Promises: make([]LedgerPromise, 0, len(promises)),
		Years:    SummarizeYears(promises, paymentsByPromise),
	}
	for _, p := range promises {
		pays := paymentsByPromise[p.ID.String()]
		out.Promises = append(out.Promises, LedgerPromise{
			Promise:  p,
			TypeName: typeNames[p.ChandaTypeID.String()],
			Payments: pays,
			Summary:  SummarizePromise(p.Amount, pays),
		})
	}
	return out, nil
}

/* =========================================================
   PROMISE MANUAL
   ========================================================= */

// CreateManualPromise membuat satu promise; duplikat
// (anggota, kategori, tahun) ditolak tanpa menulis apa pun.
func CreateManualPromise(db *gorm.DB, userID, chandaTypeID uuid.UUID, year int, amount float64, dueDate *time.Time, initialPayment float64) (*model.PromiseModel, error) {
	if amount <= 0 || initialPayment < 0 {
		return nil, ErrInvalidAmount
	}

	var created model.PromiseModel
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.PromiseModel{}).
			Where("promise_user_id = ? AND promise_chanda_type_id = ? AND promise_year = ?", userID, chandaTypeID, year).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicatePromise
		}

		created = model.PromiseModel{
			UserID:       userID,
			ChandaTypeID: chandaTypeID,
			Year:         year,
			Amount:       helper.Round2(amount),
			DueDate:      dueDate,
		}
		if err := tx.Create(&created).Error; err != nil {
			// unique index backstop untuk penulis paralel
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return ErrDuplicatePromise
			}
			return err
		}

		if initialPayment > 0 {
			return tx.Create(&model.PaymentModel{
				PromiseID: created.ID,
				Amount:    helper.Round2(initialPayment),
				PaidAt:    time.Now().UTC(),
			}).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

/* =========================================================
   BATCH DARI KALKULATOR PENGHASILAN
   ========================================================= */

// CreateBudgetBatch menghitung baris promise dari penghasilan bulanan lalu
// menyimpannya sekaligus. Sebelum menulis, SEMUA nama kategori diverifikasi
// terdaftar dan belum punya promise di tahun target; satu pelanggaran pun
// membatalkan seluruh batch.
func CreateBudgetBatch(db *gorm.DB, userID uuid.UUID, year int, monthlyIncome float64, musi bool) ([]model.PromiseModel, error) {
	rows, err := ComputeBudget(monthlyIncome, musi)
	if err != nil {
		return nil, err
	}

	var created []model.PromiseModel
	err = db.Transaction(func(tx *gorm.DB) error {
		violation := &BatchViolation{}
		typeIDByName := map[string]uuid.UUID{}

		for _, row := range rows {
			var ct chandaTypeModel.ChandaTypeModel
			if err := tx.Where("chanda_type_name = ?", row.Name).First(&ct).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					violation.MissingTypes = append(violation.MissingTypes, row.Name)
					continue
				}
				return err
			}
			typeIDByName[row.Name] = ct.ID

			var count int64
			if err := tx.Model(&model.PromiseModel{}).
				Where("promise_user_id = ? AND promise_chanda_type_id = ? AND promise_year = ?", userID, ct.ID, year).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				violation.Duplicates = append(violation.Duplicates, row.Name)
			}
		}

		if violation.HasViolations() {
			return violation
		}

		for _, row := range rows {
			p := model.PromiseModel{
				UserID:       userID,
				ChandaTypeID: typeIDByName[row.Name],
				Year:         year,
				Amount:       row.Amount,
			}
			if err := tx.Create(&p).Error; err != nil {
				return fmt.Errorf("simpan promise %s: %w", row.Name, err)
			}
			created = append(created, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

/* =========================================================
   KOREKSI PEMBAYARAN
   ========================================================= */

// ReplacePaymentTotal mengganti seluruh payment sebuah promise dengan satu
// payment baru sebesar total yang dimasukkan admin (delete + insert dalam
// satu transaksi). Total 0 berarti menghapus semua payment.
func ReplacePaymentTotal(db *gorm.DB, promiseID uuid.UUID, newTotal float64) error {
	if newTotal < 0 {
		return ErrInvalidAmount
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var promise model.PromiseModel
		if err := tx.First(&promise, "promise_id = ?", promiseID).Error; err != nil {
			return err
		}

		if err := tx.Where("payment_promise_id = ?", promiseID).
			Delete(&model.PaymentModel{}).Error; err != nil {
			return err
		}

		if newTotal > 0 {
			return tx.Create(&model.PaymentModel{
				PromiseID: promiseID,
				Amount:    helper.Round2(newTotal),
				PaidAt:    time.Now().UTC(),
			}).Error
		}
		return nil
	})
}

// AddPayment menambahkan satu payment (setoran bertahap).
func AddPayment(db *gorm.DB, promiseID uuid.UUID, amount float64, paidAt time.Time) (*model.PaymentModel, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var promise model.PromiseModel
	if err := db.First(&promise, "promise_id = ?", promiseID).Error; err != nil {
		return nil, err
	}

	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}
	pay := model.PaymentModel{
		PromiseID: promiseID,
		Amount:    helper.Round2(amount),
		PaidAt:    paidAt,
	}
	if err := db.Create(&pay).Error; err != nil {
		return nil, err
	}
	return &pay, nil
}

// DeletePromiseCascade menghapus payment dulu, baru promise-nya.
func DeletePromiseCascade(db *gorm.DB, promiseID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_promise_id = ?", promiseID).
			Delete(&model.PaymentModel{}).Error; err != nil {
			return err
		}

		res := tx.Where("promise_id = ?", promiseID).Delete(&model.PromiseModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
