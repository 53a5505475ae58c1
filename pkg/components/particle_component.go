package components

// ParticleComponent 标记实体为“白色剪影”粒子
// 渲染系统会把图像的所有不透明像素绘制为纯白，生命周期由 LifetimeComponent 控制
type ParticleComponent struct{}
