package store

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

var demoCategories = []string{"设计", "科技", "艺术", "手工", "出版"}

// DemoRecords 生成 n 条随机演示记录，用于本地预览首页与发现页的排版。
// 百分比与筹款金额各自随机，不做换算。
func DemoRecords(ids *IDSource, n int) []Record {
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		goal := gofakeit.Number(1, 100) * 1000
		author := gofakeit.Company()
		content := gofakeit.Paragraph(3, 4, 18, "\n\n")
		records = append(records, Record{
			ID:           ids.Next(),
			Title:        gofakeit.ProductName(),
			Excerpt:      gofakeit.Sentence(12),
			Content:      content,
			Author:       author,
			AuthorAvatar: fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s", gofakeit.LetterN(2)),
			Date:         gofakeit.DateRange(gofakeit.PastDate().AddDate(-1, 0, 0), gofakeit.PastDate()).Format("2006-01-02"),
			Views:        gofakeit.Number(0, 20000),
			Comments:     gofakeit.Number(0, 200),
			Category:     gofakeit.RandomString(demoCategories),
			Tags:         []string{gofakeit.HipsterWord(), gofakeit.HipsterWord()},
			CoverURL:     gofakeit.ImageURL(1200, 675),

			FundingGoal:       Int(goal),
			CurrentFunding:    Int(gofakeit.Number(0, goal*3)),
			FundingPercentage: Int(gofakeit.Number(0, 900)),
			DaysLeft:          Int(gofakeit.Number(0, 60)),
			Location:          fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
			Section:           Sections[gofakeit.Number(0, len(Sections)-1)],
			Remixes:           []RemixContribution{},
		})
	}
	return records
}
