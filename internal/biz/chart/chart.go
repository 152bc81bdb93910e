package chart

import (
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

const OutputDir = "./wheel_charts"

var ErrNoData = errors.New("no data")

// Bar 单个奖励的配置概率与观测频率
type Bar struct {
	Label      string
	Configured float64
	Observed   float64
}

// GenerateResult 生成结果
type GenerateResult struct {
	HTMLContent string // HTML 内容
	FilePath    string // 文件路径（saveLocal=false 时为空）
}

// Generator 分布对比图生成器
type Generator struct {
	outputDir string
}

// NewGenerator dir 为空时使用默认输出目录
func NewGenerator(dir string) *Generator {
	if dir == "" {
		dir = OutputDir
	}
	return &Generator{outputDir: dir}
}

// Generate 生成配置概率与观测频率的柱状对比图
// saveLocal: 是否保存为 <outputDir>/<name>.html
func (g *Generator) Generate(bars []Bar, name, subtitle string, saveLocal bool) (*GenerateResult, error) {
	if len(bars) == 0 {
		return nil, ErrNoData
	}

	labels := make([]string, len(bars))
	configured, observed := make([]float64, len(bars)), make([]float64, len(bars))
	yMax := 0.0
	for i, b := range bars {
		labels[i], configured[i], observed[i] = b.Label, b.Configured, b.Observed
		yMax = max(yMax, b.Configured, b.Observed)
	}

	lJ, _ := jsoniter.Marshal(labels)
	cJ, _ := jsoniter.Marshal(configured)
	oJ, _ := jsoniter.Marshal(observed)

	title := html.EscapeString(name)
	sub := html.EscapeString(subtitle)
	content := fmt.Sprintf(chartTpl, title, title, sub, string(lJ), string(cJ), string(oJ), yMax*1.15)

	result := &GenerateResult{
		HTMLContent: content,
	}
	if !saveLocal {
		return result, nil
	}

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return nil, err
	}
	path := filepath.Join(g.outputDir, fmt.Sprintf("%s.html", name))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return nil, err
	}
	result.FilePath = path
	return result, nil
}

const chartTpl = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>奖励分布 - %s</title>
<script src="https://cdn.plot.ly/plotly-2.27.0.min.js"></script>
<style>body{font-family:'Microsoft YaHei';margin:0;padding:20px;background:#f5f5f5}.container{background:#fff;padding:20px;border-radius:8px;box-shadow:0 2px 4px rgba(0,0,0,.1)}</style>
</head>
<body>
<div class="container"><h1>%s</h1><p>%s</p><div id="chart"></div></div>
<script>
var labels=%s,configured=%s,observed=%s,yMax=%f;
var trace1={x:labels,y:configured,type:'bar',name:'配置概率',marker:{color:'#4A90D9'},hovertemplate:'%%{x}: %%{y:.4%%}<extra>配置</extra>'};
var trace2={x:labels,y:observed,type:'bar',name:'观测频率',marker:{color:'#F5A623'},hovertemplate:'%%{x}: %%{y:.4%%}<extra>观测</extra>'};
var layout={barmode:'group',
  xaxis:{title:'倍数',type:'category'},
  yaxis:{title:'概率',tickformat:'.0%%',range:[0,yMax]},
  font:{size:14},plot_bgcolor:'#E8F8FF',height:700,width:1400,
  legend:{x:0.99,y:0.99,xanchor:'right'}};
Plotly.newPlot('chart',[trace1,trace2],layout,{displayModeBar:false});
</script>
</body>
</html>`
