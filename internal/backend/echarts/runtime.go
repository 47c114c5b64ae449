package echarts

import (
	"strconv"
	"time"
)

// runtimeJS is loaded once per page. It keeps at most one chart per element
// id (disposing the old one first), turns the marker objects of an option
// into formatter functions, and installs a single debounced resize
// listener over every live chart.
const runtimeJS = `window.marketdash = window.marketdash || (function () {
  var charts = {};
  var listening = false;

  function pick(p) {
    if (p !== null && typeof p === 'object') {
      var v = p.value;
      return Array.isArray(v) ? v[v.length - 1] : v;
    }
    return p;
  }

  function plain(x) { return String(x); }
  function grouped(x) { return Math.round(x).toLocaleString('en-US'); }

  function format(f, v) {
    v = Number(v);
    var suffix = f.suffix || '', prefix = f.prefix || '';
    if (isNaN(v)) { return String(v) + suffix; }
    if (f.signed) {
      return (v < 0 ? '-' : '+') + Math.abs(v).toFixed(f.decimals) + suffix;
    }
    var body = f.thousands ? grouped : plain;
    if (f.negate && v !== 0) {
      return '-' + prefix + body(Math.abs(v)) + suffix;
    }
    return prefix + body(v) + suffix;
  }

  function hydrate(node) {
    if (Array.isArray(node)) {
      for (var i = 0; i < node.length; i++) { node[i] = hydrate(node[i]); }
      return node;
    }
    if (node === null || typeof node !== 'object') { return node; }
    if (node.__fmt) {
      var f = node.__fmt;
      return function (p) { return format(f, pick(p)); };
    }
    if (node.__ticks) {
      var ticks = node.__ticks;
      return function (v) { return ticks[String(v)] || ''; };
    }
    if (node.__labels) {
      var labels = node.__labels;
      return function (name) { return labels[name] || name; };
    }
    for (var k in node) {
      if (Object.prototype.hasOwnProperty.call(node, k)) { node[k] = hydrate(node[k]); }
    }
    return node;
  }

  function tooltip(tips) {
    return function (params) {
      var p = Array.isArray(params) ? params[0] : params;
      if (!p) { return ''; }
      if (p.componentType && p.componentType !== 'series') { return p.name || ''; }
      if (tips.axis) { return tips.axis[p.dataIndex] || ''; }
      if (tips.names) { return tips.names[p.name] || ''; }
      var row = tips.items ? tips.items[p.seriesIndex] : null;
      return row ? (row[p.dataIndex] || '') : '';
    };
  }

  function mount(id, theme, option, tips) {
    var el = document.getElementById(id);
    if (!el || typeof echarts === 'undefined') { return null; }
    if (charts[id]) {
      charts[id].dispose();
      delete charts[id];
    }
    option = hydrate(option);
    if (tips && (tips.axis || tips.items || tips.names)) {
      option.tooltip = option.tooltip || {};
      option.tooltip.formatter = tooltip(tips);
    }
    var chart = echarts.init(el, theme);
    chart.setOption(option);
    charts[id] = chart;
    return chart;
  }

  function resizeAll() {
    for (var id in charts) {
      var c = charts[id];
      if (c && !c.isDisposed()) { c.resize(); }
    }
  }

  function listen(delay) {
    if (listening) { return false; }
    listening = true;
    var timer = null;
    window.addEventListener('resize', function () {
      clearTimeout(timer);
      timer = setTimeout(resizeAll, delay);
    });
    return true;
  }

  return { mount: mount, listen: listen, resizeAll: resizeAll, format: format };
})();`

// listenScript installs the debounced resize listener for window.
func listenScript(window time.Duration) string {
	return "<script>window.marketdash.listen(" + strconv.FormatInt(window.Milliseconds(), 10) + ");</script>"
}
