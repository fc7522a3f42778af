package category

import (
	"github.com/webtimed/webtimed/internal/core/model"
)

type weightedKeyword struct {
	keyword string
	weight  int
}

var productivityKeywords = []weightedKeyword{
	// Development & engineering (high weight)
	{"developer", 3}, {"documentation", 3}, {"api", 3}, {"sdk", 2},
	{"programming", 3}, {"coding", 3}, {"software", 2}, {"engineering", 2},
	{"前端", 3}, {"后端", 3}, {"开发", 3}, {"编程", 3}, {"代码", 3},
	{"框架", 2}, {"技术", 2}, {"算法", 2}, {"数据结构", 3},
	// Learning & education
	{"tutorial", 2}, {"course", 2}, {"learning", 2}, {"education", 2},
	{"学习", 2}, {"教程", 2}, {"课程", 2}, {"教育", 2}, {"培训", 2},
	{"university", 2}, {"大学", 2}, {"学院", 2},
	// Productivity tools
	{"project management", 2}, {"task", 1}, {"workflow", 2}, {"collaboration", 2},
	{"项目管理", 2}, {"协作", 2}, {"办公", 2}, {"企业", 1},
	// Cloud & devops
	{"cloud", 2}, {"server", 2}, {"database", 2}, {"deploy", 2},
	{"云计算", 2}, {"服务器", 2}, {"数据库", 2}, {"运维", 2},
	// Design & creative work
	{"design", 1}, {"prototype", 2}, {"wireframe", 2},
	{"设计", 1}, {"原型", 2},
	// Research & reference
	{"research", 2}, {"reference", 1}, {"wiki", 1},
	{"文档", 2}, {"参考", 1}, {"研究", 2},
	// Finance & business
	{"finance", 1}, {"banking", 2}, {"investment", 1},
	{"银行", 2}, {"金融", 1},
}

var entertainmentKeywords = []weightedKeyword{
	// Video & streaming (high weight)
	{"video", 2}, {"movie", 3}, {"film", 2}, {"stream", 2}, {"watch", 2},
	{"视频", 2}, {"电影", 3}, {"电视剧", 3}, {"综艺", 3}, {"动漫", 3},
	{"直播", 3}, {"观看", 2}, {"播放", 2},
	// Gaming
	{"game", 3}, {"gaming", 3}, {"play", 2}, {"esport", 3},
	{"游戏", 3}, {"电竞", 3}, {"攻略", 2},
	// Music
	{"music", 2}, {"song", 2}, {"playlist", 2}, {"album", 2},
	{"音乐", 2}, {"歌曲", 2}, {"歌单", 2},
	// Social media
	{"social", 2}, {"feed", 1}, {"followers", 2}, {"trending", 1},
	{"朋友圈", 3}, {"动态", 1}, {"关注", 1}, {"粉丝", 2},
	// Comics & anime
	{"comic", 3}, {"manga", 3}, {"anime", 3}, {"cartoon", 2},
	{"漫画", 3}, {"番剧", 3},
	// Shopping & lifestyle
	{"shopping", 2}, {"store", 1}, {"mall", 2}, {"deals", 2},
	{"购物", 2}, {"商城", 2}, {"优惠", 2}, {"淘宝", 3},
	// News & entertainment media
	{"entertainment", 3}, {"gossip", 3}, {"celebrity", 2},
	{"娱乐", 3}, {"八卦", 3}, {"明星", 2},
	// Humor & casual
	{"meme", 3}, {"funny", 2}, {"humor", 2},
	{"搞笑", 3}, {"段子", 3},
}

// tldRules maps domain suffixes with strong institutional signal straight to
// a category, bypassing keyword scoring.
var tldRules = []struct {
	suffix   string
	category model.Category
}{
	{".edu", model.CategoryProductivity},
	{".edu.cn", model.CategoryProductivity},
	{".edu.tw", model.CategoryProductivity},
	{".ac.uk", model.CategoryProductivity},
	{".gov", model.CategoryProductivity},
	{".gov.cn", model.CategoryProductivity},
	{".mil", model.CategoryProductivity},
	{".org", model.CategoryProductivity},
}

// ogTypeMapping maps Open Graph page types to a category.
var ogTypeMapping = map[string]model.Category{
	"video":          model.CategoryEntertainment,
	"video.movie":    model.CategoryEntertainment,
	"video.episode":  model.CategoryEntertainment,
	"video.tv_show":  model.CategoryEntertainment,
	"music":          model.CategoryEntertainment,
	"music.song":     model.CategoryEntertainment,
	"music.album":    model.CategoryEntertainment,
	"game":           model.CategoryEntertainment,
	"article":        model.CategoryProductivity, // weak signal
}
