// Package synth synthesizes the demographic attributes of the user
// dimension: fake identities, a skewed gender draw, and a two-branch age
// distribution. All generators are explicitly seeded so a run is
// reproducible end to end.
package synth

import (
	"github.com/brianvoe/gofakeit/v7"
)

// localeData holds locale reference data gofakeit does not ship: person
// name parts and province names.
type localeData struct {
	surnames   []string
	givenNames []string
	provinces  []string
}

var locales = map[string]localeData{
	"zh_CN": {
		surnames: []string{
			"王", "李", "张", "刘", "陈", "杨", "黄", "赵", "吴", "周",
			"徐", "孙", "马", "朱", "胡", "郭", "何", "林", "高", "罗",
		},
		givenNames: []string{
			"伟", "芳", "娜", "敏", "静", "秀英", "丽", "强", "磊", "军",
			"洋", "勇", "艳", "杰", "娟", "涛", "明", "超", "霞", "平",
			"刚", "桂英", "建华", "文", "玉兰", "晨", "佳", "欣怡",
		},
		provinces: []string{
			"北京市", "天津市", "河北省", "山西省", "内蒙古自治区",
			"辽宁省", "吉林省", "黑龙江省", "上海市", "江苏省",
			"浙江省", "安徽省", "福建省", "江西省", "山东省",
			"河南省", "湖北省", "湖南省", "广东省", "广西壮族自治区",
			"海南省", "重庆市", "四川省", "贵州省", "云南省",
			"西藏自治区", "陕西省", "甘肃省", "青海省", "宁夏回族自治区",
			"新疆维吾尔自治区", "台湾省", "香港特别行政区", "澳门特别行政区",
		},
	},
}

// Faker generates fake identity attributes using gofakeit, deterministic
// under a fixed seed. For locales with reference data, names and provinces
// come from those tables; any other locale falls back to gofakeit's
// built-in (US) data, with states standing in for provinces.
type Faker struct {
	faker     *gofakeit.Faker
	locale    localeData
	hasLocale bool
}

// NewFaker creates a Faker with a specific seed and locale.
func NewFaker(seed uint64, locale string) *Faker {
	data, ok := locales[locale]
	return &Faker{
		faker:     gofakeit.New(seed),
		locale:    data,
		hasLocale: ok,
	}
}

// Username generates a login-style user name.
func (f *Faker) Username() string {
	return f.faker.Username()
}

// Email generates an email address.
func (f *Faker) Email() string {
	return f.faker.Email()
}

// Name generates a person name in the configured locale.
func (f *Faker) Name() string {
	if f.hasLocale {
		return f.choose(f.locale.surnames) + f.choose(f.locale.givenNames)
	}
	return f.faker.Name()
}

// Province generates a province (or state) name in the configured locale.
func (f *Faker) Province() string {
	if f.hasLocale {
		return f.choose(f.locale.provinces)
	}
	return f.faker.State()
}

func (f *Faker) choose(items []string) string {
	return items[f.faker.IntRange(0, len(items)-1)]
}
