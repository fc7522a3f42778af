package category

import (
	"github.com/webtimed/webtimed/internal/core/model"
)

// Defaults is the builtin domain dictionary: well-known development
// platforms, cloud consoles, office suites, social/video/gaming sites.
// Anything unlisted falls through to later classification stages.
var Defaults = model.CategoryMap{
	// Productivity & work
	"github.com":             model.CategoryProductivity,
	"gitlab.com":             model.CategoryProductivity,
	"bitbucket.org":          model.CategoryProductivity,
	"stackoverflow.com":      model.CategoryProductivity,
	"developer.mozilla.org":  model.CategoryProductivity,
	"notion.so":              model.CategoryProductivity,
	"trello.com":             model.CategoryProductivity,
	"jira.com":               model.CategoryProductivity,
	"atlassian.com":          model.CategoryProductivity,
	"slack.com":              model.CategoryProductivity,
	"figma.com":              model.CategoryProductivity,
	"docs.google.com":        model.CategoryProductivity,
	"drive.google.com":       model.CategoryProductivity,
	"mail.google.com":        model.CategoryProductivity,
	"cursor.com":             model.CategoryProductivity,
	"chatgpt.com":            model.CategoryProductivity,
	"claude.ai":              model.CategoryProductivity,
	"gemini.google.com":      model.CategoryProductivity,
	"v2ex.com":               model.CategoryProductivity,
	"juejin.cn":              model.CategoryProductivity,
	"csdn.net":               model.CategoryProductivity,
	"gitee.com":              model.CategoryProductivity,
	"yuque.com":              model.CategoryProductivity,
	"feishu.cn":              model.CategoryProductivity,
	"dingtalk.com":           model.CategoryProductivity,
	"shimo.im":               model.CategoryProductivity,
	"aws.amazon.com":         model.CategoryProductivity,
	"cloud.google.com":       model.CategoryProductivity,
	"azure.microsoft.com":    model.CategoryProductivity,
	"vercel.com":             model.CategoryProductivity,
	"netlify.com":            model.CategoryProductivity,

	// Entertainment & social
	"youtube.com":      model.CategoryEntertainment,
	"bilibili.com":     model.CategoryEntertainment,
	"netflix.com":      model.CategoryEntertainment,
	"twitch.tv":        model.CategoryEntertainment,
	"hulu.com":         model.CategoryEntertainment,
	"disneyplus.com":   model.CategoryEntertainment,
	"iqiyi.com":        model.CategoryEntertainment,
	"v.qq.com":         model.CategoryEntertainment,
	"youku.com":        model.CategoryEntertainment,
	"douyin.com":       model.CategoryEntertainment,
	"tiktok.com":       model.CategoryEntertainment,
	"weibo.com":        model.CategoryEntertainment,
	"twitter.com":      model.CategoryEntertainment,
	"x.com":            model.CategoryEntertainment,
	"facebook.com":     model.CategoryEntertainment,
	"instagram.com":    model.CategoryEntertainment,
	"reddit.com":       model.CategoryEntertainment,
	"zhihu.com":        model.CategoryEntertainment,
	"tieba.baidu.com":  model.CategoryEntertainment,
	"steampowered.com": model.CategoryEntertainment,
	"epicgames.com":    model.CategoryEntertainment,
	"douban.com":       model.CategoryEntertainment,
	"xiaohongshu.com":  model.CategoryEntertainment,
	"pinterest.com":    model.CategoryEntertainment,
	"spotify.com":      model.CategoryEntertainment,
	"music.163.com":    model.CategoryEntertainment,
	"y.qq.com":         model.CategoryEntertainment,
	"huya.com":         model.CategoryEntertainment,
	"douyu.com":        model.CategoryEntertainment,
}
