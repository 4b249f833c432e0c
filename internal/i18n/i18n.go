// Package i18n holds the bilingual string table for the server-rendered
// pages. The default language is Chinese, matching the original site.
package i18n

// Language selects a translation set.
type Language string

const (
	LangZH Language = "zh"
	LangEN Language = "en"
)

// Parse returns a valid language, defaulting to Chinese.
func Parse(s string) Language {
	if Language(s) == LangEN {
		return LangEN
	}
	return LangZH
}

// Translations are the strings a single page render needs.
type Translations struct {
	Title    string
	Greeting string
	Subtitle string

	NavHome    string
	NavPricing string
	NavHelp    string
	NavLogin   string
	NavLogout  string

	AuthTitle           string
	AuthSubtitle        string
	AuthError           string
	AuthLoginWithGoogle string
	AuthLoginWithGitHub string

	PricingTitle     string
	PricingMonthly   string
	PricingYearly    string
	PricingSubscribe string
	PaymentSuccess   string
	PaymentCanceled  string

	HelpTitle string
}

var table = map[Language]Translations{
	LangZH: {
		Title:    "生日快乐",
		Greeting: "生日快乐！",
		Subtitle: "愿你的每一天都充满阳光",

		NavHome:    "首页",
		NavPricing: "价格",
		NavHelp:    "帮助",
		NavLogin:   "登录",
		NavLogout:  "退出登录",

		AuthTitle:           "登录",
		AuthSubtitle:        "登录您的账户",
		AuthError:           "登录失败，请重试",
		AuthLoginWithGoogle: "使用 Google 登录",
		AuthLoginWithGitHub: "使用 GitHub 登录",

		PricingTitle:     "价格方案",
		PricingMonthly:   "月度订阅",
		PricingYearly:    "年度订阅",
		PricingSubscribe: "立即订阅",
		PaymentSuccess:   "支付成功！感谢您的订阅。",
		PaymentCanceled:  "支付已取消。",

		HelpTitle: "帮助",
	},
	LangEN: {
		Title:    "Happy Birthday",
		Greeting: "Happy Birthday!",
		Subtitle: "May every day be full of sunshine",

		NavHome:    "Home",
		NavPricing: "Pricing",
		NavHelp:    "Help",
		NavLogin:   "Log in",
		NavLogout:  "Log out",

		AuthTitle:           "Log in",
		AuthSubtitle:        "Sign in to your account",
		AuthError:           "Login failed, please try again",
		AuthLoginWithGoogle: "Continue with Google",
		AuthLoginWithGitHub: "Continue with GitHub",

		PricingTitle:     "Pricing",
		PricingMonthly:   "Monthly",
		PricingYearly:    "Yearly",
		PricingSubscribe: "Subscribe",
		PaymentSuccess:   "Payment successful! Thank you for your subscription.",
		PaymentCanceled:  "Payment canceled.",

		HelpTitle: "Help",
	},
}

// Get returns the translation set for lang.
func Get(lang Language) Translations {
	return table[lang]
}
